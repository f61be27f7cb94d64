package appointments

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("appointments: appointment %w", domain.ErrNotFound)

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = fmt.Errorf("appointments: invalid status: %w", domain.ErrValidation)

	// ErrTransitionNotAllowed возвращается в строгом режиме при недопустимом переходе статуса
	ErrTransitionNotAllowed = fmt.Errorf("appointments: status transition not allowed: %w", domain.ErrValidation)

	// ErrInvalidFilter возвращается при некорректном фильтре списка
	ErrInvalidFilter = fmt.Errorf("appointments: invalid filter: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
