package timeblock

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrTimeBlockNotFound возвращается, когда блокировка времени не найдена
	ErrTimeBlockNotFound = fmt.Errorf("timeblock.repository: time block %w", domain.ErrNotFound)

	// ErrDuplicateID возвращается при вставке блокировки с уже существующим ID
	ErrDuplicateID = errors.New("timeblock.repository: duplicate time block id")

	// ErrEmptyID возвращается при вставке блокировки без ID
	ErrEmptyID = errors.New("timeblock.repository: time block id is empty")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeblock.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeblock.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeblock.repository: failed to scan row")
)
