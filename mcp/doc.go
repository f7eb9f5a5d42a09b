// Package mcp implements a Model Context Protocol server that exposes GitHub
// Copilot administration as MCP tools over newline-delimited JSON-RPC 2.0 on
// stdin/stdout.
//
// Only the tools capability is implemented: initialize, ping, tools/list and
// tools/call. Notifications are accepted and ignored. Each tools/call runs
// on its own goroutine through the copilot service pipeline (validate,
// retry, classify), so a slow call waiting out a backoff never blocks other
// calls. Responses are written one line at a time.
//
// Tool failures are reported in-band with isError set. The text block holds
// the actionable message ("invalid input: org: must not be empty" for bad
// arguments) and errorInfo holds the error envelope with its code,
// classification and context, for example retry_after_seconds when GitHub
// rate limited the request.
//
// This package implements the 2025-11-25 MCP protocol specification.
package mcp
