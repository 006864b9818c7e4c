// Package services содержит бизнес-логику для управления каталогом книг и кешированием.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/book-catalog/internal/models"
)

// ErrInvalidPublishDate дата публикации пришла не в формате 2006-01-02.
var ErrInvalidPublishDate = errors.New("invalid publish date")

// BookRepository определяет методы для работы с книгами в хранилище.
type BookRepository interface {
	// CreateBook добавляет новую книгу и возвращает сохранённую запись.
	CreateBook(ctx context.Context, book models.Book) (*models.Book, error)
	// GetBook возвращает активную книгу по ID.
	GetBook(ctx context.Context, id int) (*models.Book, error)
	// UpdateBook заменяет изменяемые поля книги по ID.
	UpdateBook(ctx context.Context, id int, book models.Book) (*models.Book, error)
	// DeleteBook мягко удаляет книгу по ID.
	DeleteBook(ctx context.Context, id int) error
	// ListBooks возвращает список активных книг по фильтру.
	ListBooks(ctx context.Context, filter models.BookFilter) ([]*models.Book, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// BookService реализует бизнес-логику работы с каталогом книг, включая кеширование.
// Ошибки хранилища (ErrNotFound, ErrAlreadyExists) проходят насквозь без подмены.
type BookService struct {
	repo  BookRepository
	cache Cache
	log   *slog.Logger
}

// NewBookService создает новый экземпляр BookService.
func NewBookService(repo BookRepository, cache Cache, log *slog.Logger) *BookService {
	return &BookService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую книгу, кеширует её и возвращает сохранённую запись.
func (s *BookService) Create(ctx context.Context, req models.DummyBook) (*models.Book, error) {
	publishDate, err := time.Parse("2006-01-02", req.PublishDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublishDate, req.PublishDate)
	}

	book := models.Book{
		Title:       req.Title,
		Author:      req.Author,
		PublishDate: publishDate,
		ISBN:        req.ISBN,
		Price:       req.Price,
	}

	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new book", slog.Int("id", created.ID))

	cacheKey := fmt.Sprintf("book:%d", created.ID)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache book", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return created, nil
}

// Read возвращает книгу по ID, используя кеш или репозиторий.
func (s *BookService) Read(ctx context.Context, id int) (*models.Book, error) {
	var result *models.Book
	cacheKey := fmt.Sprintf("book:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update заменяет изменяемые поля книги и обновляет кеш.
func (s *BookService) Update(ctx context.Context, id int, req models.DummyBook) (*models.Book, error) {
	publishDate, err := time.Parse("2006-01-02", req.PublishDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublishDate, req.PublishDate)
	}

	book := models.Book{
		Title:       req.Title,
		Author:      req.Author,
		PublishDate: publishDate,
		ISBN:        req.ISBN,
		Price:       req.Price,
	}

	updated, err := s.repo.UpdateBook(ctx, id, book)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated book in storage", slog.Int("id", id))

	cacheKey := fmt.Sprintf("book:%d", id)
	if err := s.cache.Set(cacheKey, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache book", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return updated, nil
}

// Remove мягко удаляет книгу по ID и инвалидирует кеш.
func (s *BookService) Remove(ctx context.Context, id int) error {
	cacheKey := fmt.Sprintf("book:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return s.repo.DeleteBook(ctx, id)
}

// List возвращает список книг по номеру страницы, лимиту и необязательным
// фильтрам по дате публикации и автору. Значение author сравнивается
// после обрезки пробельных символов.
func (s *BookService) List(ctx context.Context, page, limit int, publishDate, author string) ([]*models.Book, error) {
	filter := models.BookFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if publishDate != "" {
		parsed, err := time.Parse("2006-01-02", publishDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPublishDate, publishDate)
		}
		filter.PublishDate = &parsed
	}
	if author != "" {
		trimmed := strings.TrimSpace(author)
		filter.Author = &trimmed
	}
	return s.repo.ListBooks(ctx, filter)
}
