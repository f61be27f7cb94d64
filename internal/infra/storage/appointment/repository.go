package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/txmanager"
)

const tableAppointments = "appointments"

var appointmentColumns = []string{
	"id",
	"customer_id",
	"customer_name",
	"pet_id",
	"pet_name",
	"service_id",
	"service_name",
	"service_category",
	"employee_id",
	"employee_name",
	"appointment_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"status",
	"notes",
	"reminder_sent",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей в PostgreSQL.
// Дата и время хранятся как TEXT фиксированной ширины, поэтому фильтры по периоду
// сравнивают строки так же, как in-memory реализация.
//
// Если в контексте есть транзакция txmanager, запросы выполняются в ней.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.ID == "" {
		return nil, ErrEmptyID
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableAppointments).
		Columns(appointmentColumns...).
		Values(appointmentValues(appointment)...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appointment.Clone(), nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List получает записи по фильтру, отсортированные по (date, startTime)
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// Update полностью заменяет поля записи (кроме id и created_at)
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableAppointments).
		SetMap(map[string]interface{}{
			"customer_id":      appointment.CustomerID,
			"customer_name":    appointment.CustomerName,
			"pet_id":           appointment.PetID,
			"pet_name":         appointment.PetName,
			"service_id":       appointment.ServiceID,
			"service_name":     appointment.ServiceName,
			"service_category": appointment.ServiceCategory,
			"employee_id":      appointment.EmployeeID,
			"employee_name":    appointment.EmployeeName,
			"appointment_date": appointment.Date,
			"start_time":       appointment.StartTime,
			"end_time":         appointment.EndTime,
			"duration_minutes": appointment.DurationMinutes,
			"status":           appointment.Status,
			"notes":            appointment.Notes,
			"reminder_sent":    appointment.ReminderSent,
			"updated_at":       appointment.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": appointment.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrAppointmentNotFound
	}

	return appointment.Clone(), nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableAppointments).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// buildListQuery строит SELECT по фильтру
func buildListQuery(filter domain.AppointmentFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).From(tableAppointments)

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.PetID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"pet_id": *filter.PetID})
	}
	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.ActiveOnly {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	return selectBuilder.OrderBy("appointment_date ASC", "start_time ASC", "id ASC")
}

func appointmentValues(a *domain.Appointment) []interface{} {
	return []interface{}{
		a.ID,
		a.CustomerID,
		a.CustomerName,
		a.PetID,
		a.PetName,
		a.ServiceID,
		a.ServiceName,
		a.ServiceCategory,
		a.EmployeeID,
		a.EmployeeName,
		a.Date,
		a.StartTime,
		a.EndTime,
		a.DurationMinutes,
		string(a.Status),
		a.Notes,
		a.ReminderSent,
		a.CreatedBy,
		a.CreatedAt,
		a.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var status string

	err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.CustomerName,
		&a.PetID,
		&a.PetName,
		&a.ServiceID,
		&a.ServiceName,
		&a.ServiceCategory,
		&a.EmployeeID,
		&a.EmployeeName,
		&a.Date,
		&a.StartTime,
		&a.EndTime,
		&a.DurationMinutes,
		&status,
		&a.Notes,
		&a.ReminderSent,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = domain.AppointmentStatus(status)
	return &a, nil
}
