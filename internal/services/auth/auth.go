// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/book-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/book-catalog/internal/lib/password"
	"github.com/magabrotheeeer/book-catalog/internal/models"
	"github.com/magabrotheeeer/book-catalog/internal/storage/repository"
)

// ErrUnauthorized токен либо его субъект не подтверждают действующего пользователя.
// Причина отказа (битый токен, истёкший срок, удалённый пользователь) наружу не раскрывается.
var ErrUnauthorized = errors.New("unauthorized")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает сохранённую запись.
	CreateUser(ctx context.Context, email, passwordHash string) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Занятый email приходит из хранилища как repository.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, email, rawPassword string) (*models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	return s.users.CreateUser(ctx, email, hashed)
}

// Login проверяет пароль пользователя и выпускает JWT с email в качестве субъекта.
//
// Отсутствие пользователя и неверный пароль неразличимы для вызывающего кода:
// оба случая возвращают repository.ErrNotFound, чтобы не раскрывать
// существование учётной записи.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	token, err := s.jwtMaker.GenerateToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Authorize проверяет токен и подтверждает, что его субъект всё ещё
// соответствует существующему пользователю. Возвращает email субъекта.
// Любая причина отказа сводится к ErrUnauthorized.
func (s *AuthService) Authorize(ctx context.Context, token string) (string, error) {
	const op = "services.auth.Authorize"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if _, err := s.users.GetUserByEmail(ctx, claims.Subject); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	return claims.Subject, nil
}
