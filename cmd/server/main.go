package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gamelibrary/backend/internal/cache"
	"gamelibrary/backend/internal/config"
	"gamelibrary/backend/internal/database"
	"gamelibrary/backend/internal/handler"
	"gamelibrary/backend/internal/logger"
	"gamelibrary/backend/internal/repository"
	"gamelibrary/backend/internal/server"
)

// @title           Game Library API
// @version         1.0
// @description     Read-only API over the game library: catalog, users, reviews and analytics.
// @host            localhost:3000
// @BasePath        /api
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configDir)
		},
	}

	root := &cobra.Command{
		Use:          "gamelibrary",
		Short:        "Game Library API",
		SilenceUsage: true,
		RunE:         serve.RunE, // serve is the default command
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the .env file")

	root.AddCommand(serve, &cobra.Command{
		Use:   "ping",
		Short: "Check the database connection and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPing(cmd.Context(), configDir)
		},
	})
	return root
}

func setup(configDir string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return cfg, log, nil
}

func runServe(ctx context.Context, configDir string) error {
	cfg, log, err := setup(configDir)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Error("database connection failed", zap.Error(err))
		return err
	}
	defer database.Close(db)

	var c cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		r, err := cache.NewRedis(pingCtx, cfg)
		cancel()
		if err != nil {
			// Analytics still work uncached.
			log.Warn("redis unavailable, analytics cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			defer r.Close()
			c = r
			log.Info("analytics cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
		}
	}

	h := handler.New(repository.New(db), c, log, handler.Options{
		GamesListLimit: cfg.GamesListLimit,
		Development:    cfg.IsDevelopment(),
	})

	if err := server.New(cfg, h, log).Run(ctx); err != nil {
		log.Error("server failed", zap.Error(err))
		return err
	}
	return nil
}

func runPing(ctx context.Context, configDir string) error {
	cfg, log, err := setup(configDir)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Error("database connection failed", zap.Error(err))
		return err
	}
	defer database.Close(db)

	fmt.Fprintf(os.Stdout, "connected to %s database %q\n", cfg.DBDriver, cfg.DBName)
	return nil
}
