package get_statistics

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrInvalidPeriod возвращается при некорректных границах периода
	ErrInvalidPeriod = fmt.Errorf("get_statistics: invalid period: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_statistics: internal error")
)
