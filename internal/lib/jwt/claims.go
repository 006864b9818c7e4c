// Package jwt реализует выпуск и проверку JWT токенов сессии.
//
// Claims использует стандартные claims JWT: субъект ("sub") хранит email
// пользователя, срок жизни ("exp") задаётся при выпуске.
//
// Методы GenerateToken и ParseToken реализуют создание и валидацию JWT токена.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает данные, хранящиеся в JWT.
type Claims struct {
	jwt.RegisteredClaims // Встроенные стандартные claims JWT (Subject, ExpiresAt, IssuedAt и пр.)
}

// GenerateToken создает JWT токен для заданного субъекта, подписывая его
// секретным ключом алгоритмом HS256.
//
// Время жизни токена определяется полем tokenTTL: exp = время выпуска + TTL.
func (j *MakerImpl) GenerateToken(subject string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и срок жизни,
// возвращает Claims с субъектом, если токен корректен.
//
// Любое изменение токена после выпуска делает подпись невалидной.
// Ошибки библиотеки сводятся к фиксированному набору:
// ErrExpired, ErrBadSignature, ErrMalformed, ErrMissingSubject.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%s: %w", op, ErrExpired)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, fmt.Errorf("%s: %w", op, ErrBadSignature)
	case err != nil:
		return nil, fmt.Errorf("%s: %w", op, ErrMalformed)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrMalformed)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingSubject)
	}
	return claims, nil
}
