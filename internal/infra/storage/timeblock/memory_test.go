package timeblock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/ptr"
)

func TestMemoryRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	blocks := []*domain.TimeBlock{
		{ID: "b-2", Date: "2025-01-10", StartTime: "13:00", EndTime: "14:00", Reason: "lunch"},
		{ID: "b-1", Date: "2025-01-10", StartTime: "08:00", EndTime: "08:30", Reason: "cleaning"},
		{ID: "b-3", Date: "2025-01-11", StartTime: "08:00", EndTime: "09:00"},
	}
	for _, b := range blocks {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	_, err := repo.Create(ctx, &domain.TimeBlock{ID: "b-1"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	_, err = repo.Create(ctx, &domain.TimeBlock{})
	assert.ErrorIs(t, err, ErrEmptyID)

	day, err := repo.List(ctx, ptr.Ptr("2025-01-10"))
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "b-1", day[0].ID)
	assert.Equal(t, "b-2", day[1].ID)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := repo.GetByID(ctx, "b-2")
	require.NoError(t, err)
	assert.Equal(t, "lunch", got.Reason)

	require.NoError(t, repo.Delete(ctx, "b-2"))
	assert.ErrorIs(t, repo.Delete(ctx, "b-2"), domain.ErrNotFound)

	_, err = repo.GetByID(ctx, "b-2")
	assert.ErrorIs(t, err, ErrTimeBlockNotFound)
}

func TestBuildListQuery(t *testing.T) {
	query, args, err := buildListQuery(ptr.Ptr("2025-01-10")).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM time_blocks WHERE block_date = $1")
	assert.Equal(t, []interface{}{"2025-01-10"}, args)

	query, args, err = buildListQuery(nil).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}
