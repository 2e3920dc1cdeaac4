package subtrack

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/smirnovmx/subtrack/internal/http/handlers/subscription/create"
	"github.com/smirnovmx/subtrack/internal/http/handlers/subscription/health"
	"github.com/smirnovmx/subtrack/internal/http/handlers/subscription/list"
	"github.com/smirnovmx/subtrack/internal/http/handlers/subscription/read"
	"github.com/smirnovmx/subtrack/internal/http/handlers/subscription/remove"
	"github.com/smirnovmx/subtrack/internal/http/handlers/subscription/update"
	"github.com/smirnovmx/subtrack/internal/http/middlewarectx"
	subservice "github.com/smirnovmx/subtrack/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Пути повторяют контракт API один в один: коллекция и записи живут под
// /subscriptions, обновление — под /edit/{id}.
func RegisterRoutes(r chi.Router, logger *slog.Logger, subscriptionService *subservice.SubscriptionService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	// Браузерный клиент ходит с другого origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Welcome to Subscription Manager Backend!"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, rate.NewLimiter(50, 100)))
		r.Get("/subscriptions", list.New(logger, subscriptionService).ServeHTTP)
		r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions/{id}", read.New(logger, subscriptionService).ServeHTTP)
		r.Delete("/subscriptions/{id}", remove.New(logger, subscriptionService).ServeHTTP)
		r.Put("/edit/{id}", update.New(logger, subscriptionService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
