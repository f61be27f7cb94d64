package appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("appointment.repository: appointment %w", domain.ErrNotFound)

	// ErrDuplicateID возвращается при вставке записи с уже существующим ID
	ErrDuplicateID = errors.New("appointment.repository: duplicate appointment id")

	// ErrEmptyID возвращается при вставке записи без ID
	ErrEmptyID = errors.New("appointment.repository: appointment id is empty")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
