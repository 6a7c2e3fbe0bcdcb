package resource

import (
	"context"
	"sync"
)

// PageData is one server-side page of a paginated resource.
type PageData[T any] struct {
	Items         []T
	TotalPages    int
	TotalElements int64
}

// PageFetcher produces one page of a paginated resource.
type PageFetcher[T any] func(ctx context.Context, page, size int) (PageData[T], error)

// Paged is a Resource over a server-paginated collection. Page and size are
// part of the fetch dependency set: changing either issues a new fetch
// generation, so a late page-1 response can never clobber page-2 data.
type Paged[T any] struct {
	mu   sync.Mutex
	page int
	size int

	res *Resource[PageData[T]]
}

// NewPaged creates a paginated resource starting at page 0 with the given
// page size.
func NewPaged[T any](fetch PageFetcher[T], size int) *Paged[T] {
	p := &Paged[T]{size: size}
	p.res = New(func(ctx context.Context) (PageData[T], error) {
		p.mu.Lock()
		page, sz := p.page, p.size
		p.mu.Unlock()
		return fetch(ctx, page, sz)
	})
	return p
}

// State returns the current state.
func (p *Paged[T]) State() State[PageData[T]] { return p.res.State() }

// Subscribe registers fn for state-change notifications.
func (p *Paged[T]) Subscribe(fn func(State[PageData[T]])) func() { return p.res.Subscribe(fn) }

// Load fetches the current page.
func (p *Paged[T]) Load(ctx context.Context) State[PageData[T]] { return p.res.Load(ctx) }

// Refetch re-fetches the current page without changing dependencies.
func (p *Paged[T]) Refetch(ctx context.Context) State[PageData[T]] { return p.res.Refetch(ctx) }

// Mutate runs a state-changing call and refetches the page on success.
func (p *Paged[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	return p.res.Mutate(ctx, fn)
}

// Page returns the current zero-based page index.
func (p *Paged[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// SetPage moves to another page and fetches it.
func (p *Paged[T]) SetPage(ctx context.Context, page int) State[PageData[T]] {
	p.mu.Lock()
	p.page = page
	p.mu.Unlock()
	return p.res.Load(ctx)
}

// SetSize changes the page size, resets to the first page and fetches it.
func (p *Paged[T]) SetSize(ctx context.Context, size int) State[PageData[T]] {
	p.mu.Lock()
	p.size = size
	p.page = 0
	p.mu.Unlock()
	return p.res.Load(ctx)
}
