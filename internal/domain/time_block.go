package domain

import (
	"time"

	"github.com/m04kA/SMC-PetCareScheduler/pkg/types"
)

// TimeBlock период, закрытый для новых записей (обед, уборка), не связанный с конкретной записью
type TimeBlock struct {
	ID        string
	Date      string // YYYY-MM-DD
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string
	CreatedBy string
	CreatedAt time.Time
}

// Overlaps returns true if [start, end) intersects the block
func (b *TimeBlock) Overlaps(start, end types.TimeString) bool {
	return types.OverlapsTime(b.StartTime, b.EndTime, start, end)
}

// Clone returns a copy of the block
func (b *TimeBlock) Clone() *TimeBlock {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
