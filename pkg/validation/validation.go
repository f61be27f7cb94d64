package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	timeLayout = "15:04"
	dateLayout = "2006-01-02"
)

// FieldError ошибка валидации одного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors набор ошибок валидации структуры
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Error())
	}
	return strings.Join(messages, "; ")
}

// Validator обертка над go-playground/validator с тегами расписания:
//
//	hhmm     - время суток "HH:MM"
//	isodate  - календарная дата "YYYY-MM-DD"
//	statusof - значение из списка статусов, переданного при создании
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор. statuses задает допустимые значения для тега statusof.
func New(statuses []string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	allowed := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		allowed[s] = struct{}{}
	}

	// Ошибка регистрации возможна только при пустом имени тега
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsTime(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})
	_ = v.RegisterValidation("statusof", func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})

	return &Validator{validate: v}
}

// Struct валидирует структуру по тегам validate. Возвращает Errors или nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return translate(validationErrs)
	}
	return err
}

// IsTime проверяет формат HH:MM
func IsTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

// IsDate проверяет формат YYYY-MM-DD и существование даты
func IsDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func translate(errs validator.ValidationErrors) Errors {
	result := make(Errors, 0, len(errs))

	for _, err := range errs {
		var message string

		switch err.Tag() {
		case "required":
			message = "is required"
		case "max":
			message = fmt.Sprintf("must be at most %s characters", err.Param())
		case "min":
			message = fmt.Sprintf("must be at least %s", err.Param())
		case "gte":
			message = fmt.Sprintf("must be greater than or equal to %s", err.Param())
		case "hhmm":
			message = "must be a time in HH:MM format"
		case "isodate":
			message = "must be a date in YYYY-MM-DD format"
		case "statusof":
			message = fmt.Sprintf("unknown status %q", err.Value())
		default:
			message = fmt.Sprintf("failed on %s", err.Tag())
		}

		result = append(result, FieldError{Field: err.Field(), Message: message})
	}

	return result
}
