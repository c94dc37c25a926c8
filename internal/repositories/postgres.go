package repositories

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation - код ошибки Postgres для нарушения уникальности
const pgUniqueViolation = "23505"

// IsUniqueViolation определяет нарушение unique-констрейнта.
// Констрейнт хранилища - единственный авторитетный сигнал конфликта
// (никаких предварительных check-then-act проверок в репозиториях).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

// IsNotFound определяет отсутствие строки.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}
