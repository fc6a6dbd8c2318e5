package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые обрабатываются репозиториями
const (
	ForeignKeyViolation  = "23503"
	UniqueViolation      = "23505"
	ExclusionViolation   = "23P01"
	SerializationFailure = "40001"
)

// HasCode проверяет, что err (или обёрнутая в неё ошибка) - ошибка PostgreSQL с кодом code
func HasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}

// Constraint возвращает имя нарушенного ограничения, если оно известно
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
