package timeblocks

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrTimeBlockNotFound возвращается, когда блокировка не найдена
	ErrTimeBlockNotFound = fmt.Errorf("timeblocks: time block %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("timeblocks: invalid input: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("timeblocks: internal error")
)
