package cmd

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
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Mount every configured bot and serve the training API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := wireServer(ctx, opts)
			if err != nil {
				return err
			}
			defer srv.Close()

			if listen == "" {
				listen = srv.cfg.GetString(keyServerListen)
			}
			return runServer(ctx, srv, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default: server.listen)")

	return cmd
}

func runServer(ctx context.Context, srv *server, listen string) error {
	logger := srv.logger

	if err := srv.orchestrator.ResumeTrainings(ctx); err != nil {
		if teardownErr := srv.orchestrator.Teardown(context.WithoutCancel(ctx)); teardownErr != nil {
			logger.Warn("teardown", zap.Error(teardownErr))
		}
		return fmt.Errorf("resume trainings: %w", err)
	}
	mountAll(ctx, srv)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving", zap.String("listen", listen))
		serveErr <- srv.http.Start(listen)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("serve http: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.http.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown http server", zap.Error(err))
	}
	if err := srv.orchestrator.Teardown(shutdownCtx); err != nil {
		logger.Warn("teardown", zap.Error(err))
	}

	return runErr
}

// mountAll mounts every enabled bot found in the bots directory. A bot that
// fails to mount is logged and skipped.
func mountAll(ctx context.Context, srv *server) {
	configs, err := srv.source.List(ctx)
	if err != nil {
		srv.logger.Warn("list bots", zap.String("dir", srv.source.Dir), zap.Error(err))
		return
	}

	for _, cfg := range configs {
		if cfg.Disabled {
			srv.logger.Info("bot disabled, skipping", zap.String("bot", string(cfg.ID)))
			continue
		}
		if _, err := srv.orchestrator.MountBot(ctx, cfg); err != nil {
			srv.logger.Warn("mount bot", zap.String("bot", string(cfg.ID)), zap.Error(err))
		}
	}
}
