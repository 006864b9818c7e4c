package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/book-catalog/internal/http/response"
	"github.com/magabrotheeeer/book-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/book-catalog/internal/models"
	services "github.com/magabrotheeeer/book-catalog/internal/services/book"
)

// Handler обрабатывает запросы на постраничный список книг.
//
// Поддерживает необязательные фильтры publish_date (точная дата)
// и author (точное совпадение после обрезки пробелов).
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка книг.
type Service interface {
	List(ctx context.Context, page, limit int, publishDate, author string) ([]*models.Book, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.book.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	pageStr := r.URL.Query().Get("page")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	limitStr := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 100
	}

	publishDate := r.URL.Query().Get("publish_date")
	author := r.URL.Query().Get("author")

	books, err := h.service.List(r.Context(), page, limit, publishDate, author)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPublishDate) {
			log.Error("invalid publish date filter", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("publish_date must be in format YYYY-MM-DD"))
			return
		}
		log.Error("failed to list books", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list books"))
		return
	}

	log.Info("list books", "count", len(books))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(books),
		"books":      books,
	}))
}
