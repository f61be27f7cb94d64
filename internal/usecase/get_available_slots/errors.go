package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = fmt.Errorf("get_available_slots: invalid date: %w", domain.ErrValidation)

	// ErrInvalidConfig возвращается при некорректной сетке рабочего дня
	ErrInvalidConfig = errors.New("get_available_slots: invalid business day config")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
