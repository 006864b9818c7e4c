// Package repository реализует хранилище данных на основе PostgreSQL
// для каталога книг и пользователей. Предоставляет методы создания, чтения,
// обновления и мягкого удаления книг, а также работу с пользователями.
//
// Все проверки уникальности выполняются внутри транзакции, а уникальные
// индексы базы служат защитой от гонок между конкурентными запросами.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Доменные ошибки хранилища. Возвращаются вызывающему коду как есть,
// трансляция в HTTP-статусы выполняется на транспортном уровне.
var (
	// ErrAlreadyExists активная запись с таким естественным ключом уже существует.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrNotFound активная запись с таким идентификатором отсутствует.
	ErrNotFound = errors.New("record not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с книгами и пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'books'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table books missing or query error: %w", err)
	}
	return nil
}

// isUniqueViolation распознаёт нарушение уникального индекса PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
