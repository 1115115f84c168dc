package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-tab-search/api"
	"github.com/gcbaptista/go-tab-search/config"
	"github.com/gcbaptista/go-tab-search/internal/analytics"
	"github.com/gcbaptista/go-tab-search/internal/logger"
	"github.com/gcbaptista/go-tab-search/internal/search"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	configPath string
	port       string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP search API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServeConfig(cmd, opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&opts.port, "port", "p", "", "port to listen on (overrides config)")

	return cmd
}

// loadServeConfig reads the config file and applies flag overrides.
func loadServeConfig(cmd *cobra.Command, opts *serveOptions) (*config.ServerConfig, error) {
	cfg, err := config.LoadServerConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = opts.port
	}

	if problems := cfg.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid config: %v", problems)
	}
	return cfg, nil
}

// newRouter wires the middleware chain and routes for cfg.
func newRouter(cfg *config.ServerConfig) (*gin.Engine, error) {
	analyticsService := analytics.NewService()
	searcher, err := search.NewService(&cfg.Search, analyticsService)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestIDMiddleware())
	router.Use(api.AccessLogMiddleware())
	router.Use(api.MetricsMiddleware())
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(cfg.MaxRequestBytes))

	api.SetupRoutes(router, searcher, analyticsService, cfg.MetricsPath)
	return router, nil
}

func runServer(ctx context.Context, cfg *config.ServerConfig) error {
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Default()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := newRouter(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", server.Addr, "history_threshold", cfg.Search.HistoryThreshold.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
