package timeblock

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

const tableTimeBlocks = "time_blocks"

var timeBlockColumns = []string{
	"id",
	"block_date",
	"start_time",
	"end_time",
	"reason",
	"created_by",
	"created_at",
}

// Repository репозиторий блокировок времени в PostgreSQL
type Repository struct {
	db txmanager.DBExecutor
}

func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	if block.ID == "" {
		return nil, ErrEmptyID
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableTimeBlocks).
		Columns(timeBlockColumns...).
		Values(block.ID, block.Date, block.StartTime, block.EndTime, block.Reason, block.CreatedBy, block.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return block.Clone(), nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimeBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeBlockColumns...).
		From(tableTimeBlocks).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanTimeBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTimeBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan time block: %v", ErrScanRow, err)
	}

	return block, nil
}

// List получает блокировки за дату (или все, если date == nil)
func (r *Repository) List(ctx context.Context, date *string) ([]*domain.TimeBlock, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(date).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.TimeBlock, 0)
	for rows.Next() {
		block, err := scanTimeBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableTimeBlocks).
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
		return ErrTimeBlockNotFound
	}

	return nil
}

func buildListQuery(date *string) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(timeBlockColumns...).From(tableTimeBlocks)
	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"block_date": *date})
	}
	return selectBuilder.OrderBy("block_date ASC", "start_time ASC", "id ASC")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeBlock(row rowScanner) (*domain.TimeBlock, error) {
	var b domain.TimeBlock
	err := row.Scan(&b.ID, &b.Date, &b.StartTime, &b.EndTime, &b.Reason, &b.CreatedBy, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
