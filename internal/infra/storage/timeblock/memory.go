package timeblock

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

// MemoryRepository хранит блокировки времени в памяти процесса
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.TimeBlock
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*domain.TimeBlock)}
}

// Create сохраняет новую блокировку
func (r *MemoryRepository) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	if block.ID == "" {
		return nil, ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[block.ID]; exists {
		return nil, ErrDuplicateID
	}

	r.items[block.ID] = block.Clone()
	return block.Clone(), nil
}

// GetByID получает блокировку по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.TimeBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok {
		return nil, ErrTimeBlockNotFound
	}
	return b.Clone(), nil
}

// List возвращает блокировки за дату (или все, если date == nil), отсортированные по (date, startTime)
func (r *MemoryRepository) List(ctx context.Context, date *string) ([]*domain.TimeBlock, error) {
	r.mu.RLock()
	result := make([]*domain.TimeBlock, 0, len(r.items))
	for _, b := range r.items {
		if date != nil && b.Date != *date {
			continue
		}
		result = append(result, b.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		if result[i].StartTime != result[j].StartTime {
			return result[i].StartTime < result[j].StartTime
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Delete удаляет блокировку
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrTimeBlockNotFound
	}

	delete(r.items, id)
	return nil
}
