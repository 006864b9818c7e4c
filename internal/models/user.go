// Package models содержит доменную модель пользователя системы,
// включающую адрес электронной почты, хэш пароля и временные метки.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int       // Уникальный идентификатор, назначается хранилищем
	Email        string    // Электронная почта, естественный ключ среди пользователей
	PasswordHash string    // Хэш пароля, исходный пароль нигде не хранится
	CreatedAt    time.Time // Время создания записи
	UpdatedAt    time.Time // Время последнего изменения записи
}
