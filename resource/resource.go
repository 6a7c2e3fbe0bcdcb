// Package resource turns a remote fetch into a small observable state
// machine: {data, loading, error}, a refetch operation, and a guard that
// keeps results of superseded fetches from overwriting newer state. Every
// remote collection the SDK exposes (properties, bookings, users pages,
// verification queues) is a thin instantiation of this one machine.
package resource

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// State is the settled or in-flight view of one resource.
//
// While a fetch is in flight the previous Data stays visible and Loading is
// true. A failed fetch resets Data to the zero value before recording Err,
// so data and error never describe two different requests at once.
type State[T any] struct {
	Data    T
	Loading bool
	Err     string
}

// Fetcher produces the current value of a resource.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Resource binds a Fetcher to observable state. The zero value is not
// usable; construct with New.
type Resource[T any] struct {
	fetch Fetcher[T]

	mu      sync.Mutex
	state   State[T]
	gen     uint64
	subs    map[int]func(State[T])
	nextSub int

	group singleflight.Group
}

// New creates a resource in its initial state: loading, no data, no error.
// Nothing is fetched until Load or Refetch is called.
func New[T any](fetch Fetcher[T]) *Resource[T] {
	return &Resource[T]{
		fetch: fetch,
		state: State[T]{Loading: true},
		subs:  make(map[int]func(State[T])),
	}
}

// State returns the current state.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Subscribe registers fn for state-change notifications and returns a
// cancel func. Callbacks run synchronously on the goroutine that settled
// the fetch and must not block.
func (r *Resource[T]) Subscribe(fn func(State[T])) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// Load issues a new fetch generation and blocks until it settles,
// returning the resulting state. A Load supersedes every fetch issued
// before it: if an older fetch resolves later, its result is discarded.
// Call Load again after a dependency of the fetcher changes.
func (r *Resource[T]) Load(ctx context.Context) State[T] {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	st := r.beginLocked()
	r.mu.Unlock()
	r.publish(st)

	return r.run(ctx, gen)
}

// Refetch re-issues the fetch for the current generation and blocks until
// it settles. Concurrent refetches of the same generation are coalesced
// into one backend call; all callers observe the same result. Refetching a
// settled resource with unchanged dependencies simply asks the backend
// again.
func (r *Resource[T]) Refetch(ctx context.Context) State[T] {
	r.mu.Lock()
	gen := r.gen
	st := r.beginLocked()
	r.mu.Unlock()
	r.publish(st)

	return r.run(ctx, gen)
}

// Mutate runs a state-changing call and, when it succeeds, refetches the
// whole resource. There is no finer-grained invalidation: after any
// mutation the list is reloaded from the backend.
func (r *Resource[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	r.Refetch(ctx)
	return nil
}

// beginLocked marks a fetch as in flight. Previous data stays visible;
// a stale error from an earlier request is cleared. Must be called with mu
// held.
func (r *Resource[T]) beginLocked() State[T] {
	r.state.Loading = true
	r.state.Err = ""
	return r.state
}

func (r *Resource[T]) run(ctx context.Context, gen uint64) State[T] {
	v, err, _ := r.group.Do(strconv.FormatUint(gen, 10), func() (interface{}, error) {
		return r.fetch(ctx)
	})

	r.mu.Lock()
	if gen != r.gen {
		// Superseded by a newer Load; its result owns the state.
		st := r.state
		r.mu.Unlock()
		return st
	}
	if err != nil {
		var zero T
		r.state = State[T]{Data: zero, Err: err.Error()}
	} else {
		r.state = State[T]{Data: v.(T)}
	}
	st := r.state
	r.mu.Unlock()

	r.publish(st)
	return st
}

func (r *Resource[T]) publish(st State[T]) {
	r.mu.Lock()
	subs := make([]func(State[T]), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}
