package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/book-catalog/internal/models"
	"github.com/magabrotheeeer/book-catalog/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id int, req models.DummyBook) (*models.Book, error) {
	args := m.Called(ctx, id, req)
	if b := args.Get(0); b != nil {
		return b.(*models.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := models.DummyBook{
		Title:       "Dead Souls",
		Author:      "Nikolai Gogol",
		PublishDate: "1842-05-21",
		ISBN:        "978-0-300-06099",
		Price:       9.99,
	}

	tests := []struct {
		name           string
		idParam        string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление книги",
			idParam:     "123",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 123, mock.AnythingOfType("models.DummyBook")).
					Return(&models.Book{ID: 123, Title: "Dead Souls", Author: "Nikolai Gogol"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Dead Souls"`,
		},
		{
			name:           "некорректный id в url",
			idParam:        "abc",
			requestBody:    validBody,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name:           "некорректный JSON",
			idParam:        "123",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "ошибка валидации",
			idParam:        "123",
			requestBody:    models.DummyBook{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Title is a required field, field Author is a required field, field PublishDate is a required field, field ISBN is a required field, field Price is a required field`,
		},
		{
			name:        "книга не найдена",
			idParam:     "123",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 123, mock.AnythingOfType("models.DummyBook")).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"book not found"}`,
		},
		{
			name:        "конфликт названия и автора",
			idParam:     "123",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 123, mock.AnythingOfType("models.DummyBook")).
					Return(nil, repository.ErrAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"book with this title and author already exists"}`,
		},
		{
			name:        "ошибка сервиса",
			idParam:     "123",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 123, mock.AnythingOfType("models.DummyBook")).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not update book"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v1/books/"+tt.idParam, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.idParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
