package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/copilot-mcp/errors"
	"github.com/jmgilman/copilot-mcp/logging"
)

// serverName is reported to clients during initialization.
const serverName = "copilot-mcp"

// Server exposes Copilot administration tools over newline-delimited
// JSON-RPC 2.0.
type Server struct {
	service     CopilotService
	tools       []tool
	toolsByName map[string]*tool
	logger      logging.Logger
	version     string
	initialized bool
}

// ServerOption configures optional server behavior.
type ServerOption func(*Server)

// WithLogger sets the logger for protocol and tool call records.
func WithLogger(logger logging.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVersion sets the version reported in serverInfo.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// NewServer creates a server whose tools call into service.
func NewServer(service CopilotService, options ...ServerOption) *Server {
	s := &Server{
		service: service,
		tools:   copilotTools(),
		version: "dev",
	}
	for _, option := range options {
		option(s)
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}

	s.toolsByName = make(map[string]*tool, len(s.tools))
	for i := range s.tools {
		s.toolsByName[s.tools[i].name] = &s.tools[i]
	}

	return s
}

// encoder serialises writes from concurrent tool calls onto one stream.
type encoder struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func (e *encoder) Encode(v any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enc.Encode(v)
}

// Run processes requests from input and writes responses to output until
// input reaches EOF or ctx is cancelled. Each message occupies one line.
// tools/call requests run concurrently; everything else is answered in
// order. Run returns once every in-flight call has answered.
func (s *Server) Run(ctx context.Context, input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	// Tool results can be large (seat listings).
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	out := &encoder{enc: json.NewEncoder(output)}
	g, gctx := errgroup.WithContext(ctx)

	readErr := func() error {
		for scanner.Scan() {
			if gctx.Err() != nil {
				return nil
			}

			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var req request
			if err := json.Unmarshal(line, &req); err != nil {
				if writeErr := writeError(out, json.RawMessage("null"), codeParseError, "parse error: "+err.Error()); writeErr != nil {
					return errors.Wrap(writeErr, errors.CodeInternal, "failed to write parse error response")
				}
				continue
			}

			if req.JSONRPC != "2.0" {
				if !req.isNotification() {
					if writeErr := writeError(out, req.ID, codeInvalidRequest, "unsupported JSON-RPC version"); writeErr != nil {
						return errors.Wrap(writeErr, errors.CodeInternal, "failed to write version error response")
					}
				}
				continue
			}

			// Notifications have no ID and receive no response.
			if req.isNotification() {
				s.logger.Debug("ignoring notification", "method", req.Method)
				continue
			}

			if req.Method == "tools/call" && s.initialized {
				g.Go(func() error {
					return s.handleToolsCall(gctx, out, &req)
				})
				continue
			}

			if err := s.dispatch(out, &req); err != nil {
				return err
			}
		}
		return scanner.Err()
	}()

	if err := g.Wait(); err != nil {
		return err
	}
	return readErr
}

// dispatch routes a JSON-RPC request to the appropriate handler.
func (s *Server) dispatch(out *encoder, req *request) error {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(out, req)
	case "ping":
		return writeResult(out, req.ID, map[string]any{})
	case "tools/list":
		if !s.initialized {
			return writeError(out, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsList(out, req)
	case "tools/call":
		// Calls after initialize are dispatched concurrently by Run.
		return writeError(out, req.ID, codeInvalidRequest, "server not initialized (call initialize first)")
	default:
		return writeError(out, req.ID, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleInitialize(out *encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(out, req.ID, codeInvalidParams, "params required for initialize")
	}

	var params initializeParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(out, req.ID, codeInvalidParams, "invalid initialize params: "+err.Error())
	}

	s.initialized = true
	s.logger.Info("client initialized",
		"client", params.ClientInfo.Name,
		"client_version", params.ClientInfo.Version,
		"protocol_version", params.ProtocolVersion,
	)

	return writeResult(out, req.ID, initializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: serverCapabilities{
			Tools: &toolCapability{},
		},
		ServerInfo: serverInfo{
			Name:    serverName,
			Version: s.version,
		},
	})
}

func (s *Server) handleToolsList(out *encoder, req *request) error {
	descriptions := make([]toolDescription, 0, len(s.tools))
	for _, t := range s.tools {
		descriptions = append(descriptions, t.describe())
	}
	return writeResult(out, req.ID, toolsListResult{Tools: descriptions})
}

func (s *Server) handleToolsCall(ctx context.Context, out *encoder, req *request) error {
	if len(req.Params) == 0 {
		return writeError(out, req.ID, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return writeError(out, req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	t, ok := s.toolsByName[params.Name]
	if !ok {
		return writeError(out, req.ID, codeInvalidParams, "unknown tool: "+params.Name)
	}

	start := time.Now()
	payload, err := t.call(ctx, s.service, params.Arguments)
	if err != nil {
		s.logger.Info("tool call failed",
			"tool", t.name,
			"duration", time.Since(start),
			"code", errors.GetCode(err),
		)
	} else {
		s.logger.Info("tool call succeeded", "tool", t.name, "duration", time.Since(start))
	}

	return writeResult(out, req.ID, buildToolResult(payload, err))
}

// buildToolResult turns an upstream payload or a failure into a tool result.
// Validation failures read "invalid input: <field>: <reason>"; classified
// failures carry their actionable message.
func buildToolResult(payload json.RawMessage, err error) toolsCallResult {
	if err == nil {
		text := string(payload)
		if len(payload) == 0 {
			text = "{}"
		}
		return toolsCallResult{Content: []contentBlock{{Type: "text", Text: text}}}
	}

	info := errors.ToJSON(err)
	text := info.Message
	if errors.GetCode(err) == errors.CodeInvalidInput {
		text = "invalid input: " + text
	}

	return toolsCallResult{
		Content:   []contentBlock{{Type: "text", Text: text}},
		IsError:   true,
		ErrorInfo: info,
	}
}

func writeResult(out *encoder, id json.RawMessage, result any) error {
	if err := out.Encode(response{JSONRPC: "2.0", ID: id, Result: result}); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to write result")
	}
	return nil
}

func writeError(out *encoder, id json.RawMessage, code int, message string) error {
	if err := out.Encode(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to write error response")
	}
	return nil
}
