// Package create реализует HTTP-обработчик для добавления новых книг в каталог.
//
// Handler принимает JSON-запрос с данными книги, валидирует их,
// вызывает бизнес-логику создания книги через сервис и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/book-catalog/internal/http/response"
	"github.com/magabrotheeeer/book-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/book-catalog/internal/models"
	services "github.com/magabrotheeeer/book-catalog/internal/services/book"
	"github.com/magabrotheeeer/book-catalog/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание новых книг.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания книги,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания книг
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания книги.
type Service interface {
	Create(ctx context.Context, req models.DummyBook) (*models.Book, error)
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
// @Summary Добавить новую книгу
// @Description Создает новую книгу в каталоге. Пара название-автор должна быть уникальной среди активных книг.
// @Tags Books
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param request body models.DummyBook true "Данные новой книги"
// @Success 200 {object} map[string]any "Успешное создание книги"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON, дата или дубликат книги"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании книги"
// @Router /books [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.book.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	book, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPublishDate):
			log.Error("invalid publish date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("publish_date must be in format YYYY-MM-DD"))
		case errors.Is(err, repository.ErrAlreadyExists):
			log.Error("duplicate book", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("book with this title and author already exists"))
		default:
			log.Error("failed to create book", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create book"))
		}
		return
	}

	log.Info("success to create book", slog.Int("id", book.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"book": book,
	}))
}
