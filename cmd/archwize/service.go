package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/archwize/archwize"
	"github.com/archwize/archwize/internal/adapters/redis"
	"github.com/archwize/archwize/internal/config"
	"github.com/archwize/archwize/internal/logging"
)

// buildService loads configuration and assembles the diagram service with its
// optional collaborators (upstream generator, response cache).
func buildService(cmd *cobra.Command) (*archwize.Service, config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cfg, nil, err
	}

	logger := logging.New(logging.Level(cfg.Debug))

	opts := []archwize.Option{
		archwize.WithLogger(logger),
		archwize.WithHuggingFace(cfg.HuggingFace.Token, cfg.HuggingFace.URL, nil),
	}
	if cfg.HuggingFace.Token == "" {
		logger.Warn("HUGGINGFACE_API_TOKEN not set, using anonymous free tier")
	}
	if cfg.Redis.Addr != "" {
		cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithTTL(time.Duration(cfg.Redis.TTL)))
		opts = append(opts, archwize.WithCache(cache))
		logger.Info("response cache enabled", "addr", cfg.Redis.Addr)
	}

	return archwize.New(opts...), cfg, logger, nil
}
