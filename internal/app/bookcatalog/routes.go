// Package bookcatalog предоставляет маршруты для основного приложения.
package bookcatalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/book/create"
	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/book/list"
	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/book/read"
	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/book/remove"
	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/book/update"
	"github.com/magabrotheeeer/book-catalog/internal/http/handlers/health"
	"github.com/magabrotheeeer/book-catalog/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/book-catalog/internal/services/auth"
	bookservice "github.com/magabrotheeeer/book-catalog/internal/services/book"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Чтение каталога открыто для всех, изменение каталога требует JWT.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, bookService *bookservice.BookService, readyCheck health.Checker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/books", list.New(logger, bookService).ServeHTTP)
		r.Get("/books/{id}", read.New(logger, bookService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/books", create.New(logger, bookService).ServeHTTP)
			r.Put("/books/{id}", update.New(logger, bookService).ServeHTTP)
			r.Delete("/books/{id}", remove.New(logger, bookService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, readyCheck).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
