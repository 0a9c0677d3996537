package view

import (
	"context"
	"sync"
)

// FetchFunc loads the value identified by key
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// Effect runs one fetch per key change and applies only the result of
// the latest run. Starting a new run cancels the context of the previous
// one, and a result that arrives for an older generation is dropped.
type Effect[T any] struct {
	mu     sync.Mutex
	gen    uint64
	key    string
	cancel context.CancelFunc
	done   chan struct{}
	state  State[T]
}

// NewEffect creates an effect in the not-loaded state
func NewEffect[T any]() *Effect[T] {
	return &Effect[T]{state: NotLoaded[T]()}
}

// Run starts a fetch for key. The returned channel is closed once this
// run has settled, whether its result was applied or dropped.
func (e *Effect[T]) Run(ctx context.Context, key string, fetch FetchFunc[T]) <-chan struct{} {
	runCtx, cancel := context.WithCancel(ctx)

	done := make(chan struct{})

	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	e.gen++
	gen := e.gen
	e.key = key
	e.cancel = cancel
	e.done = done
	e.state = Loading[T]()
	e.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		v, err := fetch(runCtx, key)

		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.gen {
			return
		}
		if err != nil {
			e.state = Failed[T](err.Error())
		} else {
			e.state = Loaded(v)
		}
		e.cancel = nil
	}()

	return done
}

// Done returns the channel of the latest run. It is already closed when
// nothing has run yet.
func (e *Effect[T]) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return e.done
}

// Key returns the key of the latest run
func (e *Effect[T]) Key() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.key
}

// State returns a snapshot of the current state
func (e *Effect[T]) State() State[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Cancel aborts the in-flight run, if any. Its result will be dropped
// and the state returns to not-loaded.
func (e *Effect[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel == nil {
		return
	}
	e.cancel()
	e.cancel = nil
	e.gen++
	e.state = NotLoaded[T]()
}
