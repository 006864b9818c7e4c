// Package read реализует HTTP-обработчик для получения конкретной книги по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения книги по идентификатору
// и возвращает данные книги в JSON-формате.
//
// В случае ошибок формирует соответствующие HTTP-ответы с описанием проблемы.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/book-catalog/internal/http/response"
	"github.com/magabrotheeeer/book-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/book-catalog/internal/models"
	"github.com/magabrotheeeer/book-catalog/internal/storage/repository"
)

// Handler обрабатывает запросы на получение книги по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения книги по ID
}

// Service описывает интерфейс бизнес-логики чтения книги.
type Service interface {
	Read(ctx context.Context, id int) (*models.Book, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение книги по ID.
//
// Выполняет:
// - Парсинг ID из URL.
// - Вызов бизнес-логики для чтения книги.
// - Формирование JSON-ответа с данными или ошибкой.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.book.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	book, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("book not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("book not found"))
			return
		}
		log.Error("failed to read book", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read book"))
		return
	}

	log.Info("success to read book", slog.Int("id", book.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"book": book,
	}))
}
