// Package models содержит доменные структуры, описывающие книгу каталога,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Book представляет собой основную модель книги,
// используемую в бизнес-логике и хранилище.
// Поле IsDeleted реализует мягкое удаление: запись физически остаётся
// в таблице, но исключается из всех выборок.
type Book struct {
	ID          int       `json:"id"`           // Уникальный идентификатор книги
	Title       string    `json:"title"`        // Название книги
	Author      string    `json:"author"`       // Автор книги
	PublishDate time.Time `json:"publish_date"` // Дата публикации
	ISBN        string    `json:"isbn"`         // ISBN (без проверки формата, только ограничение длины)
	Price       float64   `json:"price"`        // Цена книги
	IsDeleted   bool      `json:"-"`            // Флаг мягкого удаления, наружу не отдается
	CreatedAt   time.Time `json:"created_at"`   // Время создания записи
	UpdatedAt   time.Time `json:"updated_at"`   // Время последнего изменения записи
}

// DummyBook используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Book.
// Дата приходит в виде строки, чтобы её можно было валидировать и парсить вручную.
type DummyBook struct {
	Title       string  `json:"title" validate:"required,max=255"`        // Название книги
	Author      string  `json:"author" validate:"required,max=100"`       // Автор книги
	PublishDate string  `json:"publish_date" validate:"required"`         // Дата публикации в формате 2006-01-02
	ISBN        string  `json:"isbn" validate:"required,max=15"`          // ISBN книги
	Price       float64 `json:"price" validate:"required,gt=0"`           // Цена (>0)
}

// BookFilter представляет параметры фильтрации и пагинации,
// которые передаются в слой доступа к данным при выборке книг.
// Nil-поля означают отсутствие соответствующего фильтра.
type BookFilter struct {
	PublishDate *time.Time // Фильтр по дате публикации (nil — без фильтра)
	Author      *string    // Фильтр по автору (nil — без фильтра)
	Limit       int        // Максимальное количество записей
	Offset      int        // Смещение выборки
}
