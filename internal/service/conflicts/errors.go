package conflicts

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректной дате или интервале
	ErrInvalidInput = fmt.Errorf("conflicts: invalid input: %w", domain.ErrValidation)

	// ErrInternal возвращается при ошибках репозиториев
	ErrInternal = errors.New("conflicts: internal error")
)
