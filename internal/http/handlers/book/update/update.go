// Package update реализует HTTP-обработчик для полного обновления книги по ID.
//
// Handler принимает JSON-запрос с новыми данными книги, валидирует их,
// извлекает ID из URL-параметров и делегирует обновление сервису бизнес-логики.
// Обновление заменяет все поля книги целиком.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/book-catalog/internal/http/response"
	"github.com/magabrotheeeer/book-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/book-catalog/internal/models"
	services "github.com/magabrotheeeer/book-catalog/internal/services/book"
	"github.com/magabrotheeeer/book-catalog/internal/storage/repository"
)

// Handler обрабатывает запросы на обновление книги.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для обновления книги
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики обновления книги.
type Service interface {
	Update(ctx context.Context, id int, req models.DummyBook) (*models.Book, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить книгу
// @Description Полностью заменяет данные книги по ID. Пара название-автор не должна конфликтовать с другой активной книгой.
// @Tags Books
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "ID книги"
// @Param request body models.DummyBook true "Новые данные книги"
// @Success 200 {object} map[string]any "Успешное обновление книги"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON, дата или конфликт названия"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Книга не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении книги"
// @Router /books/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.book.update"

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

	var req models.DummyBook
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	book, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPublishDate):
			log.Error("invalid publish date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("publish_date must be in format YYYY-MM-DD"))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("book not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("book not found"))
		case errors.Is(err, repository.ErrAlreadyExists):
			log.Error("duplicate book", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("book with this title and author already exists"))
		default:
			log.Error("failed to update book", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update book"))
		}
		return
	}

	log.Info("success to update book", slog.Int("id", book.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"book": book,
	}))
}
