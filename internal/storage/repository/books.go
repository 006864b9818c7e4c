package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/book-catalog/internal/models"
)

// GetBook возвращает активную книгу по её ID.
// Мягко удалённые записи не видны: для них возвращается ErrNotFound.
func (s *Storage) GetBook(ctx context.Context, id int) (*models.Book, error) {
	const op = "storage.GetBook"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, author, publish_date, isbn, price, is_deleted, created_at, updated_at
			  FROM books
			  WHERE id = $1 AND NOT is_deleted`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Book
	if err := row.Scan(&result.ID, &result.Title, &result.Author, &result.PublishDate,
		&result.ISBN, &result.Price, &result.IsDeleted, &result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListBooks возвращает список активных книг с фильтрами и пагинацией.
// Записи сортируются по ID по убыванию, после чего применяются offset и limit.
func (s *Storage) ListBooks(ctx context.Context, filter models.BookFilter) ([]*models.Book, error) {
	const op = "storage.ListBooks"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, author, publish_date, isbn, price, is_deleted, created_at, updated_at
			  FROM books
			  WHERE NOT is_deleted`
	args := []any{}
	if filter.PublishDate != nil {
		args = append(args, *filter.PublishDate)
		query += fmt.Sprintf(" AND publish_date = $%d", len(args))
	}
	if filter.Author != nil {
		args = append(args, *filter.Author)
		query += fmt.Sprintf(" AND author = $%d", len(args))
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Book
	for rows.Next() {
		var item models.Book
		if err := rows.Scan(&item.ID, &item.Title, &item.Author, &item.PublishDate,
			&item.ISBN, &item.Price, &item.IsDeleted, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateBook вставляет новую книгу и возвращает сохранённую запись.
// Проверка уникальности (title, author) среди активных книг и вставка
// выполняются в одной транзакции; частичный уникальный индекс базы
// закрывает гонку между конкурентными вставками.
func (s *Storage) CreateBook(ctx context.Context, book models.Book) (*models.Book, error) {
	const op = "storage.CreateBook"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var existingID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM books WHERE title = $1 AND author = $2 AND NOT is_deleted`,
		book.Title, book.Author).Scan(&existingID)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO books (title, author, publish_date, isbn, price)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, title, author, publish_date, isbn, price, is_deleted, created_at, updated_at`
	var result models.Book
	if err := tx.QueryRowContext(ctx, query,
		book.Title, book.Author, book.PublishDate, book.ISBN, book.Price).
		Scan(&result.ID, &result.Title, &result.Author, &result.PublishDate,
			&result.ISBN, &result.Price, &result.IsDeleted, &result.CreatedAt, &result.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateBook полностью заменяет изменяемые поля активной книги и возвращает
// обновлённую запись. Возвращает ErrNotFound, если активной книги с таким ID
// нет, и ErrAlreadyExists, если пара (title, author) занята другой активной книгой.
func (s *Storage) UpdateBook(ctx context.Context, id int, book models.Book) (*models.Book, error) {
	const op = "storage.UpdateBook"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var currentID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM books WHERE id = $1 AND NOT is_deleted`, id).Scan(&currentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var conflictID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM books WHERE title = $1 AND author = $2 AND NOT is_deleted AND id <> $3`,
		book.Title, book.Author, id).Scan(&conflictID)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE books
			  SET title = $1, author = $2, publish_date = $3, isbn = $4, price = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING id, title, author, publish_date, isbn, price, is_deleted, created_at, updated_at`
	var result models.Book
	if err := tx.QueryRowContext(ctx, query,
		book.Title, book.Author, book.PublishDate, book.ISBN, book.Price, id).
		Scan(&result.ID, &result.Title, &result.Author, &result.PublishDate,
			&result.ISBN, &result.Price, &result.IsDeleted, &result.CreatedAt, &result.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// DeleteBook мягко удаляет книгу: выставляет is_deleted и обновляет updated_at.
// Физически строка остаётся в таблице. Возвращает ErrNotFound, если активной
// книги с таким ID нет.
func (s *Storage) DeleteBook(ctx context.Context, id int) error {
	const op = "storage.DeleteBook"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE books
			  SET is_deleted = TRUE, updated_at = NOW()
			  WHERE id = $1 AND NOT is_deleted`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
