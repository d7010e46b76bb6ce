package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-exercisetracker/config"
	controller "golang-exercisetracker/controllers"
	"golang-exercisetracker/database"
	"golang-exercisetracker/helpers"
	"golang-exercisetracker/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:          "exercisetracker",
		Short:        "Exercise tracker HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// viper reads the environment lazily, so .env must be loaded first.
			envErr := config.LoadDotEnv()
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, envErr)
		},
	}

	cmd.Flags().String("port", "3000", "port to listen on (env PORT)")
	cmd.Flags().String("store", config.StoreMongo, "store backend: mongo or memory (env STORE)")
	_ = v.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("store", cmd.Flags().Lookup("store"))

	return cmd
}

func run(ctx context.Context, cfg config.Config, envErr error) error {
	logger, err := helpers.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Warn(".env file not loaded, using environment variables", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := database.Open(connectCtx, cfg)
	cancel()
	if err != nil {
		logger.Error("failed to open store", zap.String("store", cfg.Store), zap.Error(err))
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()
	logger.Info("store ready", zap.String("store", cfg.Store))

	gin.SetMode(gin.ReleaseMode)
	ctl := controller.NewController(store, logger, cfg.RequestTimeout)
	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      routes.NewRouter(ctl, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("exercise tracker listening", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
