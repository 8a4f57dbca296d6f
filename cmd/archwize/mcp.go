package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpAdapter "github.com/archwize/archwize/internal/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts ArchWize as an MCP server, exposing diagram generation as a tool
for AI agents.

Supported transports:
- stdio (default): Standard input/output, for local process integration.
- sse: Server-Sent Events over HTTP, for remote agents.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		svc, _, logger, err := buildService(cmd)
		if err != nil {
			log.Fatalf("Error initializing archwize: %v", err)
		}

		srv := mcpAdapter.NewServer(svc)

		switch transport {
		case "stdio":
			// Logs must not corrupt JSON-RPC on stdout.
			log.SetOutput(os.Stderr)
			logger.Info("starting ArchWize MCP server (stdio)")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.ServeSSE(ctx, port); err != nil {
				logger.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		default:
			fmt.Printf("Unknown transport: %s (expected stdio or sse)\n", transport)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport to use: stdio or sse")
	mcpCmd.Flags().Int("port", 8081, "Port for the SSE transport")
}
