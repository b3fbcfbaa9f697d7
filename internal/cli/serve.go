package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrdesk/hr-backend/internal/hr/events"
	"github.com/hrdesk/hr-backend/pkg/config"
	"github.com/hrdesk/hr-backend/pkg/database"
	"github.com/hrdesk/hr-backend/pkg/logger"
	"github.com/hrdesk/hr-backend/pkg/messaging"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HR HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithValidation(ServiceName)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides HR_SERVER_PORT)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(ServiceName, cfg.Server.Environment)
	log.Info().Msg("starting HR service")

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	deps := Deps{
		Config:    cfg,
		DB:        db,
		Publisher: events.Noop{},
		Logger:    log,
	}

	if cfg.RabbitMQ.Enabled {
		rmq, err := messaging.New(&cfg.RabbitMQ, log)
		if err != nil {
			return fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		defer rmq.Close()

		publisher, err := events.NewHREventPublisher(rmq, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			return fmt.Errorf("create event publisher: %w", err)
		}

		go rmq.Watch(ctx)

		deps.RabbitMQ = rmq
		deps.Publisher = publisher
	} else {
		log.Info().Msg("RabbitMQ disabled, events are discarded")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
