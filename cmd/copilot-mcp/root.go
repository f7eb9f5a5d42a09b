package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/copilot-mcp/config"
	"github.com/jmgilman/copilot-mcp/copilot"
	"github.com/jmgilman/copilot-mcp/logging"
	"github.com/jmgilman/copilot-mcp/mcp"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "copilot-mcp",
		Short: "MCP server for GitHub Copilot administration",
		Long: `copilot-mcp exposes GitHub Copilot usage metrics and seat management as
Model Context Protocol tools. It speaks JSON-RPC on stdin/stdout and logs to
stderr.

Authenticate with GITHUB_TOKEN, or with a GitHub App through GITHUB_APP_ID,
GITHUB_APP_PRIVATE_KEY (or GITHUB_APP_PRIVATE_KEY_PATH) and
GITHUB_APP_INSTALLATION_ID. A .env file in the working directory is loaded
first.

Examples:
  copilot-mcp                          # Serve using environment variables
  copilot-mcp --config copilot.yaml    # Serve using a config file
  copilot-mcp version                  # Print the version`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "copilot-mcp %s\n", version)
		},
	}
}

// serve runs the MCP server until stdin closes or ctx is cancelled.
func serve(ctx context.Context, opts *rootOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOpts, err := cfg.LoggingOptions()
	if err != nil {
		return err
	}
	logger := logging.New(stderr, logOpts)

	provider, err := newProvider(cfg.GitHub)
	if err != nil {
		return err
	}

	svc := copilot.NewService(provider,
		copilot.WithLogger(logger),
		copilot.WithRetryPolicy(cfg.RetryPolicy(logger)),
	)
	server := mcp.NewServer(svc, mcp.WithLogger(logger), mcp.WithVersion(version))

	logger.Info("serving MCP on stdio",
		"version", version,
		"auth", authMode(cfg.GitHub),
		"base_url", provider.Client().BaseURL.String(),
	)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, stdin, stdout)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Run stays blocked on stdin until the next line; exit without it.
		logger.Info("shutting down", "reason", context.Cause(ctx))
		return nil
	}
}
