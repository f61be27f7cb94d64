package keylock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	l := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.DoSerializable(context.Background(), "2025-01-10", func(ctx context.Context) error {
				// read-modify-write without its own synchronization
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Equal(t, 0, l.size())
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l := New()

	unlockA := l.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := l.Lock("b")
		unlockB()
		close(done)
	}()

	<-done
}

func TestLocker_PropagatesError(t *testing.T) {
	l := New()
	errBoom := errors.New("boom")

	err := l.DoSerializable(context.Background(), "k", func(ctx context.Context) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
}

func TestLocker_CancelledContext(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := l.DoSerializable(ctx, "k", func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
