package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/archwize/archwize/internal/adapters/http"
	"github.com/archwize/archwize/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the diagram generation HTTP server",
	Long:  `Starts ArchWize in server mode, exposing the diagram JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, cfg, logger, err := buildService(cmd)
		if err != nil {
			fmt.Printf("Error initializing archwize: %v\n", err)
			os.Exit(1)
		}

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			if p, err := strconv.Atoi(port); err == nil {
				cfg.Port = p
			}
		}

		metrics.MustRegister()
		handler := httpAdapter.NewHandler(svc, logger)

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting ArchWize server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("ArchWize server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
}
