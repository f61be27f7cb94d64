package txmanager

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExecutor struct {
	DBExecutor
}

func TestGetExecutor_WithoutTransaction(t *testing.T) {
	db := &fakeExecutor{}

	got := GetExecutor(context.Background(), db)

	assert.Same(t, db, got)
	assert.False(t, IsInTransaction(context.Background()))
}

func TestGetExecutor_WithTransaction(t *testing.T) {
	tx := &sql.Tx{}
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	got := GetExecutor(ctx, &fakeExecutor{})

	assert.Same(t, tx, got)
	assert.True(t, IsInTransaction(ctx))
}
