package check_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректной дате или времени
	ErrInvalidInput = fmt.Errorf("check_availability: invalid input: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
