package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

const (
	maxBodyBytes      = 1 << 20
	msgInternalError  = "внутренняя ошибка сервера"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

// ErrEmptyBody возвращается DecodeJSON для пустого тела запроса
var ErrEmptyBody = errors.New("request body is empty")

// Envelope общий формат всех ответов API
type Envelope struct {
	Success   bool             `json:"success"`
	Data      interface{}      `json:"data,omitempty"`
	Error     string           `json:"error,omitempty"`
	ErrorKind domain.ErrorKind `json:"errorKind,omitempty"`
}

// DecodeJSON декодирует тело запроса. Неизвестные поля считаются ошибкой.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("invalid json: %w", err)
	}

	return nil
}

// RespondJSON пишет успешный ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Envelope{Success: true, Data: data})
}

// RespondError пишет ответ с ошибкой заданного вида
func RespondError(w http.ResponseWriter, status int, kind domain.ErrorKind, message string) {
	write(w, status, Envelope{Success: false, Error: message, ErrorKind: kind})
}

// RespondBadRequest 400 VALIDATION_ERROR
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, domain.KindValidation, message)
}

// RespondNotFound 404 NOT_FOUND
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, domain.KindNotFound, message)
}

// RespondConflict 409 CONFLICT
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, domain.KindConflict, message)
}

// RespondInternalError 500 INTERNAL, детали не раскрываются
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, domain.KindInternal, msgInternalError)
}

// WithDetails добавляет к сообщению текст ошибки
func WithDetails(message string, err error) string {
	if err == nil {
		return message
	}
	return fmt.Sprintf("%s: %v", message, err)
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
