// Package mcpserver implements the JSON-RPC 2.0 stdio server exposing the
// inspection operations as MCP tools.
package mcpserver

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/pageprobe/internal/browser"
	"github.com/aleister1102/pageprobe/internal/config"
	"github.com/aleister1102/pageprobe/internal/datastore"
	"github.com/aleister1102/pageprobe/internal/inspector"
	"github.com/aleister1102/pageprobe/internal/metrics"
	"github.com/rs/zerolog"
)

// maxLineSize bounds a single JSON-RPC request line
const maxLineSize = 1024 * 1024

// shutdownDrainTimeout bounds how long shutdown waits for in-flight requests
const shutdownDrainTimeout = 30 * time.Second

// Server reads JSON-RPC requests line by line from a reader and handles
// each in its own goroutine. All tool calls share one browser handle and
// one history store.
type Server struct {
	inspector *inspector.Inspector
	browser   *browser.Manager
	history   *datastore.HistoryStore
	metrics   *metrics.Collector
	serverCfg config.ServerConfig
	logger    zerolog.Logger

	writeMutex   sync.Mutex
	writer       io.Writer
	wg           sync.WaitGroup
	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// NewServer creates a new MCP server. The history store and metrics
// collector are optional; a nil value disables that concern.
func NewServer(
	insp *inspector.Inspector,
	browserManager *browser.Manager,
	history *datastore.HistoryStore,
	collector *metrics.Collector,
	serverCfg config.ServerConfig,
	logger zerolog.Logger,
) *Server {
	return &Server{
		inspector:  insp,
		browser:    browserManager,
		history:    history,
		metrics:    collector,
		serverCfg:  serverCfg,
		logger:     logger.With().Str("component", "MCPServer").Logger(),
		shutdownCh: make(chan struct{}),
	}
}

// ServeStdio runs the request loop over stdin/stdout
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve reads newline-delimited JSON-RPC requests until EOF, context
// cancellation, or shutdown. Requests are handled concurrently; each
// failed or succeeded call is answered on the writer.
func (s *Server) Serve(ctx context.Context, reader io.Reader, writer io.Writer) error {
	s.writeMutex.Lock()
	s.writer = writer
	s.writeMutex.Unlock()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			return ctx.Err()
		case <-s.shutdownCh:
			s.wg.Wait()
			return nil
		default:
		}

		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		s.wg.Add(1)
		go func(data []byte) {
			defer s.wg.Done()
			s.handleRequest(ctx, data)
		}(line)
	}

	s.wg.Wait()
	return scanner.Err()
}

// handleRequest decodes and routes a single JSON-RPC request
func (s *Server) handleRequest(ctx context.Context, data []byte) {
	var req JSONRPCRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendError(nil, codeParseError, "Parse error", err.Error())
		return
	}

	if req.Method == "" {
		s.sendError(req.ID, codeInvalidRequest, "Invalid request", "missing method")
		return
	}

	// Notifications carry no id and expect no response.
	if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
		return
	}

	var result interface{}
	var rpcErr *RPCError

	switch req.Method {
	case "initialize":
		result = s.handleInitialize()
	case "ping":
		result = map[string]interface{}{}
	case "tools/list":
		result = map[string]interface{}{"tools": toolDefinitions()}
	case "tools/call":
		result, rpcErr = s.handleToolsCall(ctx, req.Params)
	default:
		rpcErr = &RPCError{Code: codeMethodNotFound, Message: "Method not found", Data: req.Method}
	}

	if rpcErr != nil {
		if s.metrics != nil {
			s.metrics.RecordFailed()
		}
		s.sendError(req.ID, rpcErr.Code, rpcErr.Message, rpcErr.Data)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordProcessed()
	}
	s.sendResult(req.ID, result)
}

// handleInitialize answers the MCP handshake
func (s *Server) handleInitialize() interface{} {
	return map[string]interface{}{
		"protocolVersion": protocolVersion,
		"serverInfo": map[string]interface{}{
			"name":    s.serverCfg.Name,
			"version": s.serverCfg.Version,
		},
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{"listChanged": false},
		},
	}
}

// handleToolsCall validates the argument shape and executes the tool.
// Shape violations become invalid-params errors before the Guard or any
// browser work runs; everything past that point is reported inside the
// tool result, not as a protocol error.
func (s *Server) handleToolsCall(ctx context.Context, params json.RawMessage) (interface{}, *RPCError) {
	var call toolCallParams
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &RPCError{Code: codeInvalidParams, Message: "Invalid params", Data: err.Error()}
	}
	if call.Arguments == nil {
		call.Arguments = map[string]interface{}{}
	}

	target, err := requiredStringArg(call.Arguments, "url")
	if err != nil && isInspectionTool(call.Name) {
		return nil, &RPCError{Code: codeInvalidParams, Message: "Invalid params", Data: err.Error()}
	}

	start := time.Now()
	var result interface{}
	var success bool

	switch call.Name {
	case toolCheckSiteHealth:
		health := s.inspector.CheckSiteHealth(ctx, target)
		result, success = health, health.Success

	case toolTakeScreenshot:
		filename, argErr := optionalStringArg(call.Arguments, "filename")
		if argErr != nil {
			return nil, &RPCError{Code: codeInvalidParams, Message: "Invalid params", Data: argErr.Error()}
		}
		shot := s.inspector.CaptureScreenshot(ctx, target, filename)
		result, success = shot, shot.Success

	case toolCheckElement:
		selector, argErr := requiredStringArg(call.Arguments, "selector")
		if argErr != nil {
			return nil, &RPCError{Code: codeInvalidParams, Message: "Invalid params", Data: argErr.Error()}
		}
		check := s.inspector.CheckElement(ctx, target, selector)
		result, success = check, check.Success

	default:
		return nil, &RPCError{Code: codeInvalidParams, Message: "Tool not found", Data: call.Name}
	}

	s.recordInvocation(call.Name, target, result, success, time.Since(start))

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, &RPCError{Code: codeToolFailure, Message: "Failed to encode tool result", Data: err.Error()}
	}

	return map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": string(resultJSON),
			},
		},
	}, nil
}

func isInspectionTool(name string) bool {
	switch name {
	case toolCheckSiteHealth, toolTakeScreenshot, toolCheckElement:
		return true
	}
	return false
}

// recordInvocation persists the call outcome, best effort
func (s *Server) recordInvocation(tool, locator string, result interface{}, success bool, elapsed time.Duration) {
	if s.history == nil {
		return
	}

	entry := datastore.InvocationEntry{
		ToolName:   tool,
		Locator:    locator,
		Success:    success,
		Error:      resultError(result),
		DurationMs: elapsed.Milliseconds(),
	}
	if err := s.history.RecordInvocation(entry); err != nil {
		s.logger.Warn().Err(err).Str("tool", tool).Msg("Failed to record invocation")
	}
}

// resultError pulls the error string out of a tool result
func resultError(result interface{}) string {
	switch r := result.(type) {
	case inspector.HealthCheckResult:
		return r.Error
	case inspector.ScreenshotResult:
		return r.Error
	case inspector.ElementCheckResult:
		return r.Error
	}
	return ""
}

// sendResult writes a success response
func (s *Server) sendResult(id interface{}, result interface{}) {
	s.send(JSONRPCResponse{JSONRPC: "2.0", ID: id, Result: result})
}

// sendError writes an error response
func (s *Server) sendError(id interface{}, code int, message string, data interface{}) {
	s.send(JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message, Data: data},
	})
}

// send serializes one response as a single line on the shared writer
func (s *Server) send(resp JSONRPCResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal response")
		return
	}

	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	if s.writer == nil {
		return
	}
	fmt.Fprintln(s.writer, string(data))
}

// Shutdown drains in-flight requests, then releases the browser handle,
// metrics collector, and history store. Safe to call more than once.
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownCh)

		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(shutdownDrainTimeout):
			s.logger.Warn().Msg("Shutdown drain timeout exceeded; continuing shutdown")
		}

		if s.metrics != nil {
			s.metrics.Stop()
		}
		if s.browser != nil {
			s.browser.Close()
		}
		if s.history != nil {
			if err := s.history.Close(); err != nil {
				s.logger.Warn().Err(err).Msg("Failed to close history store")
			}
		}

		s.logger.Info().Msg("Server shut down")
	})
}
