// Package subtrack собирает и запускает HTTP-сервис управления подписками.
package subtrack

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/smirnovmx/subtrack/internal/config"
	subservice "github.com/smirnovmx/subtrack/internal/services/subscription"
	"github.com/smirnovmx/subtrack/internal/storage/filestore"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	store  *filestore.Store
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := filestore.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	subscriptionService := subservice.NewSubscriptionService(store, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, subscriptionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
