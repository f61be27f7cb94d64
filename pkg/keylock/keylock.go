package keylock

import (
	"context"
	"sync"
)

// Locker выдает мьютекс на каждый ключ. Записи удаляются, когда ключ никем не удерживается,
// поэтому количество ключей (дат) не растет бесконечно.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock блокирует ключ и возвращает функцию разблокировки
func (l *Locker) Lock(key string) func() {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// DoSerializable выполняет fn, пока удерживается блокировка ключа.
// Реализует тот же контракт, что и txmanager.TransactionManager для in-memory хранилища.
func (l *Locker) DoSerializable(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unlock := l.Lock(key)
	defer unlock()

	return fn(ctx)
}

func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
