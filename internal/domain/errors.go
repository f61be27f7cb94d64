package domain

import "errors"

// ErrorKind перечисление видов ошибок, видимых клиенту
type ErrorKind string

const (
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindConflict   ErrorKind = "CONFLICT"
	KindValidation ErrorKind = "VALIDATION_ERROR"
	KindInternal   ErrorKind = "INTERNAL"
)

// Корневые ошибки. Пакетные ошибки оборачивают их через %w,
// поэтому вид любой ошибки определяется через errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
)

// KindOf классифицирует ошибку
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInternal
	}
}
