// Package mcp exposes diagram generation as a Model Context Protocol server,
// so AI agents can request flowcharts as a tool call.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/archwize/archwize"
	"github.com/archwize/archwize/pkg/mermaid"
)

// Service defines what the MCP tools need from the diagram service.
type Service interface {
	Generate(ctx context.Context, prompt string, orientation mermaid.Orientation) string
}

// GenerateResult is the structured tool output.
type GenerateResult struct {
	MermaidCode string `json:"mermaid_code" jsonschema_description:"Valid Mermaid.js flowchart source"`
	Orientation string `json:"orientation" jsonschema_description:"Layout direction of the diagram (TD or LR)"`
	Topic       string `json:"topic" jsonschema_description:"Topic the prompt was classified as"`
}

type generateArgs struct {
	Prompt      string `mapstructure:"prompt"`
	Orientation string `mapstructure:"orientation"`
}

// Server wraps the diagram service and exposes it as an MCP server.
type Server struct {
	svc       Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(svc Service) *Server {
	s := &Server{
		svc:       svc,
		mcpServer: server.NewMCPServer("archwize-mcp", archwize.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using Server-Sent Events.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	tool := mcp.NewTool("generate_diagram",
		mcp.WithDescription("Generate a valid Mermaid.js flowchart from a natural-language description."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("Description of the process to diagram")),
		mcp.WithString("orientation", mcp.Description("Layout direction: TD (top-down, default) or LR (left-right)")),
		mcp.WithOutputSchema[GenerateResult](),
	)
	s.mcpServer.AddTool(tool, mcp.NewStructuredToolHandler(s.handleGenerate))
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, rawArgs map[string]interface{}) (GenerateResult, error) {
	var args generateArgs
	if err := mapstructure.Decode(rawArgs, &args); err != nil {
		return GenerateResult{}, fmt.Errorf("decode arguments: %w", err)
	}
	if args.Prompt == "" {
		return GenerateResult{}, fmt.Errorf("prompt is required")
	}

	orientation := mermaid.ParseOrientation(args.Orientation)
	return GenerateResult{
		MermaidCode: s.svc.Generate(ctx, args.Prompt, orientation),
		Orientation: string(orientation),
		Topic:       string(mermaid.Classify(args.Prompt)),
	}, nil
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
