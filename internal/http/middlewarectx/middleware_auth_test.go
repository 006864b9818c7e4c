package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auth "github.com/magabrotheeeer/book-catalog/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Authorize(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func TestJWTMiddleware(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(m *AuthServiceMock)
		wantStatus     int
		wantEmailInCtx string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			setupMock: func(m *AuthServiceMock) {
				m.On("Authorize", mock.Anything, "good-token").
					Return("user@example.com", nil)
			},
			wantStatus:     http.StatusOK,
			wantEmailInCtx: "user@example.com",
		},
		{
			name:       "missing header",
			authHeader: "",
			setupMock:  func(_ *AuthServiceMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			setupMock:  func(_ *AuthServiceMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMock: func(m *AuthServiceMock) {
				m.On("Authorize", mock.Anything, "bad-token").
					Return("", auth.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(AuthServiceMock)
			tt.setupMock(svc)

			var gotEmail string
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if v, ok := r.Context().Value(User).(string); ok {
					gotEmail = v
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(svc, log)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/books", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, nextCalled)
				assert.Equal(t, tt.wantEmailInCtx, gotEmail)
			} else {
				assert.False(t, nextCalled)
			}
			svc.AssertExpectations(t)
		})
	}
}
