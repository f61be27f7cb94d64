package appointment

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

// MemoryRepository хранит записи в памяти процесса.
//
// Наружу всегда отдаются копии: вызывающий код не может изменить хранилище в обход Update.
// Чтения идут под RLock, поэтому видят согласованный снимок без наполовину примененных записей.
// Атомарность check-then-insert обеспечивается не здесь, а блокировкой по дате (pkg/keylock).
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*domain.Appointment)}
}

// Create сохраняет новую запись. ID и временные метки назначает вызывающий код.
func (r *MemoryRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.ID == "" {
		return nil, ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[appointment.ID]; exists {
		return nil, ErrDuplicateID
	}

	r.items[appointment.ID] = appointment.Clone()
	return appointment.Clone(), nil
}

// GetByID получает запись по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return a.Clone(), nil
}

// List возвращает записи, подходящие под фильтр, отсортированные по (date, startTime)
func (r *MemoryRepository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	result := make([]*domain.Appointment, 0, len(r.items))
	for _, a := range r.items {
		if filter.Matches(a) {
			result = append(result, a.Clone())
		}
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return domain.Less(result[i], result[j])
	})

	return result, nil
}

// Update полностью заменяет сохраненную запись
func (r *MemoryRepository) Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[appointment.ID]; !ok {
		return nil, ErrAppointmentNotFound
	}

	r.items[appointment.ID] = appointment.Clone()
	return appointment.Clone(), nil
}

// Delete удаляет запись
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrAppointmentNotFound
	}

	delete(r.items, id)
	return nil
}
