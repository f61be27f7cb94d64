package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_appointment: invalid input: %w", domain.ErrValidation)

	// ErrConflict возвращается, когда интервал пересекается с активной записью
	ErrConflict = fmt.Errorf("create_appointment: time slot %w", domain.ErrConflict)

	// ErrTimeBlocked возвращается, когда интервал пересекается с блокировкой времени
	ErrTimeBlocked = fmt.Errorf("create_appointment: time is blocked: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
