package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wolfpad/wolfpad"
	httpAdapter "github.com/wolfpad/wolfpad/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AI gateway HTTP server",
	Long: `Starts the gateway, exposing POST /api/ai plus health, readiness, info,
OpenAPI and Prometheus routes. The completion API key must be configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		logger := newLogger(cfg)

		ctx := context.Background()
		gw, err := wolfpad.New(ctx, cfg, wolfpad.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("error initializing gateway: %w", err)
		}
		defer gw.Close()

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithTimeout(cfg.Server.Timeout),
			httpAdapter.WithTrustProxyHeaders(cfg.Server.TrustProxyHeaders),
			httpAdapter.WithMetrics(gw.Metrics()),
			httpAdapter.WithGatherer(gw.Registry()),
		}
		if l := gw.Limiter(); l != nil {
			opts = append(opts, httpAdapter.WithRateLimiter(l))
		}
		if p := gw.Platform(); p != nil {
			logger.Info("Readiness probes data platform", "url", p.URL())
			opts = append(opts, httpAdapter.WithPlatform(p))
		}
		handler, err := httpAdapter.NewHandler(gw, opts...)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting WolfPad gateway", "addr", srv.Addr, "model", cfg.AI.Model,
				"rate_limit", cfg.RateLimit.RequestsPerWindow, "platform", cfg.Platform.Enabled())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "error", err)
				}
			}
			logger.Info("WolfPad gateway stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides config, e.g. :8080)")
}
