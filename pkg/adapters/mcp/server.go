package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wolfpad/wolfpad"
	"github.com/wolfpad/wolfpad/pkg/actions"
	"github.com/wolfpad/wolfpad/pkg/domain"
)

// Dispatcher runs a named action with raw params.
type Dispatcher interface {
	DispatchNamed(ctx context.Context, action string, params map[string]any) (any, error)
}

// Server exposes every action as an MCP tool.
type Server struct {
	dispatcher Dispatcher
	mcpServer  *server.MCPServer
	logger     *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(d Dispatcher, opts ...Option) (*Server, error) {
	s := &Server{
		dispatcher: d,
		mcpServer: server.NewMCPServer("wolfpad-mcp", strings.TrimSpace(wolfpad.Version),
			server.WithToolCapabilities(false),
		),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.registerTools(); err != nil {
		return nil, err
	}
	return s, nil
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// HandleMessage processes one raw JSON-RPC message.
func (s *Server) HandleMessage(ctx context.Context, msg json.RawMessage) mcp.JSONRPCMessage {
	return s.mcpServer.HandleMessage(ctx, msg)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() error {
	for _, name := range domain.ActionNames() {
		schema, err := json.Marshal(actions.ParamSchema(name))
		if err != nil {
			return fmt.Errorf("failed to encode params schema for %s: %w", name, err)
		}
		tool := mcp.NewToolWithRawSchema(name.String(), actions.Description(name), schema)
		s.mcpServer.AddTool(tool, s.toolHandler(name))
	}
	return nil
}

func (s *Server) toolHandler(name domain.ActionName) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.dispatcher.DispatchNamed(ctx, name.String(), request.GetArguments())
		if err != nil {
			s.logger.Warn("MCP tool call failed", "tool", name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		body, err := json.Marshal(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
