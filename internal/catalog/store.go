package catalog

import (
	"context"
	"time"
)

// Store is the persistent document store the catalog runs against.
// Implementations report missing documents with an error wrapping ErrNotFound.
type Store interface {
	ListComponents(ctx context.Context) ([]Component, error)
	GetComponent(ctx context.Context, id string) (Component, error)
	CreateComponent(ctx context.Context, c Component) (Component, error)
	UpdateComponent(ctx context.Context, c Component) (Component, error)
	DeleteComponent(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (Category, error)
	CreateCategory(ctx context.Context, c Category) (Category, error)
	UpdateCategory(ctx context.Context, c Category) (Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CounterDelta is a relative change applied to a component's counters.
type CounterDelta struct {
	Usage uint64
	Query uint64
}

// CounterStore applies counter changes atomically on the store side, so that
// concurrent uses of one component never overwrite each other.
type CounterStore interface {
	IncrementCounters(ctx context.Context, id string, delta CounterDelta, at time.Time) (Counters, error)
}
