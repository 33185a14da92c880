package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	miet "github.com/gipersonic/miet"
	gateway "github.com/gipersonic/miet/internal/adapters/http"
	redisAdapter "github.com/gipersonic/miet/pkg/adapters/redis"
	"github.com/gipersonic/miet/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP gateway",
	Long:  `Starts the engine behind a JSON API. With --redis, sessions and relay links are shared across instances.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		sessionTTL, _ := cmd.Flags().GetDuration("session-ttl")
		operatorWebhook, _ := cmd.Flags().GetString("operator-webhook")
		userWebhook, _ := cmd.Flags().GetString("user-webhook")

		registry := prometheus.NewRegistry()
		metrics := observability.New(registry)

		opts := []miet.Option{miet.WithMetrics(metrics)}

		if redisAddr != "" {
			client := backend.NewClient(&backend.Options{Addr: redisAddr})
			defer client.Close()

			store := redisAdapter.NewFromClient(client, redisAdapter.WithTTL(sessionTTL))
			opts = append(opts,
				miet.WithSessionStore(store),
				miet.WithRelayStore(redisAdapter.NewRelayStore(client)),
				miet.WithProgressSink(redisAdapter.NewProgressSink(client)),
			)
		}
		if operatorWebhook != "" {
			opts = append(opts, miet.WithNotifier(gateway.NewWebhookNotifier(operatorWebhook)))
		}
		if userWebhook != "" {
			opts = append(opts, miet.WithMessenger(gateway.NewWebhookMessenger(userWebhook)))
		}

		engine, logger, err := buildEngine(cmd, opts...)
		if err != nil {
			return fmt.Errorf("error initializing engine: %w", err)
		}

		handler := gateway.NewHandler(engine,
			gateway.WithLogger(logger),
			gateway.WithMetricsRegistry(registry),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server started", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error stopping server: %w", err)
				}
			}
			logger.Info("server stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for shared sessions (host:port)")
	serveCmd.Flags().Duration("session-ttl", 24*time.Hour, "Session expiry when using redis")
	serveCmd.Flags().String("operator-webhook", "", "Webhook URL for operator notifications")
	serveCmd.Flags().String("user-webhook", "", "Webhook URL for direct user delivery")
}
