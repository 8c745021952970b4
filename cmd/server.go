package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"movees-db/internal/wire"
	"movees-db/pkg/utils"

	"go.uber.org/zap"
)

// APIServer serves app on the configured port until ctx is done, then drains
// in-flight requests and stops the refresh loop.
func APIServer(ctx context.Context, config *utils.Config, logger *zap.Logger) error {
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()

	repo := wire.NewRepository(config, logger)
	app, err := wire.Wiring(refreshCtx, repo, config, logger)
	if err != nil {
		return fmt.Errorf("wire app: %w", err)
	}

	refreshDone := app.StartRefresh(refreshCtx, config)

	addr := fmt.Sprintf(":%s", config.App.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.Router,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
		IdleTimeout:  config.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", "http://localhost"+addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()

	stopRefresh()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Shutdown did not complete cleanly", zap.Error(err))
	}

	select {
	case <-refreshDone:
	case <-shutdownCtx.Done():
		logger.Warn("Refresh loop still running at shutdown deadline")
	}

	logger.Info("Server stopped")
	return nil
}
