package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-PetCareScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/logger"
	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return m.executeFunc(ctx, req)
}

func TestHandler_Slots(t *testing.T) {
	uc := &mockUseCase{executeFunc: func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
		return &getAvailableSlots.Response{
			Date:      req.Date,
			ServiceID: req.ServiceID,
			Slots:     []types.TimeString{"08:00", "08:30"},
		}, nil
	}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2025-01-10&serviceId=s-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data AvailableSlotsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "2025-01-10", env.Data.Date)
	assert.Equal(t, "s-1", env.Data.ServiceID)
	assert.Equal(t, []string{"08:00", "08:30"}, env.Data.Slots)
}

func TestHandler_InvalidDate(t *testing.T) {
	uc := &mockUseCase{executeFunc: func(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
		return nil, getAvailableSlots.ErrInvalidDate
	}}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=10.01.2025", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
