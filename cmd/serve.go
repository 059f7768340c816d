package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"tasjeel/internal/adminauth"
	"tasjeel/internal/api"
	"tasjeel/internal/api/handler/v1handler"
	"tasjeel/internal/config"
	"tasjeel/internal/registration"
	"tasjeel/internal/roster"
	"tasjeel/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// logSessionEvents drains admin session changes into the audit log until the
// subscription is cancelled.
func logSessionEvents(ctx context.Context, events <-chan adminauth.Event) {
	for event := range events {
		logger.Info(ctx, "admin session change",
			zap.String("event", string(event.Type)),
			zap.String("username", event.Session.Username),
			zap.String("token_id", event.Session.TokenID),
		)
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the registration API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			sessions := adminauth.New(adminauth.NewOptions(cfg))
			events, unsubscribe := sessions.Subscribe()
			defer unsubscribe()
			go logSessionEvents(ctx, events)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Registrar: registration.New(strg, registration.NewOptions(cfg)),
					Registry:  roster.New(strg),
					Sessions:  sessions,
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
