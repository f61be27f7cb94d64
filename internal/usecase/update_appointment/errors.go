package update_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("update_appointment: appointment %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("update_appointment: invalid input: %w", domain.ErrValidation)

	// ErrConflict возвращается, когда новый интервал пересекается с активной записью
	ErrConflict = fmt.Errorf("update_appointment: time slot %w", domain.ErrConflict)

	// ErrTimeBlocked возвращается, когда новый интервал пересекается с блокировкой времени
	ErrTimeBlocked = fmt.Errorf("update_appointment: time is blocked: %w", domain.ErrConflict)

	// ErrConcurrentUpdate возвращается, если дату записи изменили параллельно
	ErrConcurrentUpdate = fmt.Errorf("update_appointment: appointment date changed concurrently: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
