// Package jwt реализует выпуск и проверку JWT токенов сессии.
//
// Maker определяет интерфейс для создания и проверки токенов, в claim "sub"
// которых хранится email пользователя. MakerImpl — конкретная реализация
// с использованием секретного ключа процесса и срока жизни токена.
package jwt

import (
	"errors"
	"time"
)

// Ошибки проверки токена. Любая из них означает, что токен не даёт доступа;
// различие нужно вызывающему коду только для журналирования.
var (
	// ErrMalformed токен не удалось декодировать.
	ErrMalformed = errors.New("token is malformed")
	// ErrBadSignature подпись не совпадает с секретным ключом процесса.
	ErrBadSignature = errors.New("token signature is invalid")
	// ErrExpired срок жизни токена истёк.
	ErrExpired = errors.New("token has expired")
	// ErrMissingSubject в токене отсутствует claim "sub".
	ErrMissingSubject = errors.New("token subject is missing")
)

// Maker описывает интерфейс для выпуска и проверки JWT токенов.
//
// Методы позволяют создавать токен для заданного субъекта (email пользователя),
// а также разбирать токен и извлекать из него субъект.
type Maker interface {
	// GenerateToken выпускает подписанный токен для субъекта.
	GenerateToken(subject string) (string, error)
	// ParseToken возвращает *Claims с субъектом токена.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL). Оба значения задаются один раз при старте
// процесса и не меняются.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
