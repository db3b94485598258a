package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// memStore is an in-memory StoreWithCounters used by the service tests.
type memStore struct {
	mu         sync.Mutex
	seq        int
	components map[string]Component
	order      []string
	categories map[string]Category
	catOrder   []string
	calls      int
	failWith   error
}

func newMemStore() *memStore {
	return &memStore{
		components: make(map[string]Component),
		categories: make(map[string]Category),
	}
}

func (m *memStore) begin() error {
	m.mu.Lock()
	m.calls++
	return m.failWith
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) ListComponents(ctx context.Context) ([]Component, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	out := make([]Component, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.components[id])
	}
	return out, nil
}

func (m *memStore) GetComponent(ctx context.Context, id string) (Component, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return Component{}, err
	}
	c, ok := m.components[id]
	if !ok {
		return Component{}, fmt.Errorf("component %s: %w", id, ErrNotFound)
	}
	return c, nil
}

func (m *memStore) CreateComponent(ctx context.Context, c Component) (Component, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return Component{}, err
	}
	c.ID = m.nextID("cmp")
	m.components[c.ID] = c
	m.order = append(m.order, c.ID)
	return c, nil
}

func (m *memStore) UpdateComponent(ctx context.Context, c Component) (Component, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return Component{}, err
	}
	if _, ok := m.components[c.ID]; !ok {
		return Component{}, ErrNotFound
	}
	m.components[c.ID] = c
	return c, nil
}

func (m *memStore) DeleteComponent(ctx context.Context, id string) error {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return err
	}
	if _, ok := m.components[id]; !ok {
		return ErrNotFound
	}
	delete(m.components, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) ListCategories(ctx context.Context) ([]Category, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(m.catOrder))
	for _, id := range m.catOrder {
		out = append(out, m.categories[id])
	}
	return out, nil
}

func (m *memStore) GetCategory(ctx context.Context, id string) (Category, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return Category{}, err
	}
	c, ok := m.categories[id]
	if !ok {
		return Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return c, nil
}

func (m *memStore) CreateCategory(ctx context.Context, c Category) (Category, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return Category{}, err
	}
	c.ID = m.nextID("cat")
	m.categories[c.ID] = c
	m.catOrder = append(m.catOrder, c.ID)
	return c, nil
}

func (m *memStore) UpdateCategory(ctx context.Context, c Category) (Category, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return Category{}, err
	}
	if _, ok := m.categories[c.ID]; !ok {
		return Category{}, ErrNotFound
	}
	m.categories[c.ID] = c
	return c, nil
}

func (m *memStore) DeleteCategory(ctx context.Context, id string) error {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return err
	}
	if _, ok := m.categories[id]; !ok {
		return ErrNotFound
	}
	delete(m.categories, id)
	for i, v := range m.catOrder {
		if v == id {
			m.catOrder = append(m.catOrder[:i], m.catOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) IncrementCounters(ctx context.Context, id string, delta CounterDelta, at time.Time) (Counters, error) {
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return Counters{}, err
	}
	c, ok := m.components[id]
	if !ok {
		return Counters{}, ErrNotFound
	}
	c.UsageCount += delta.Usage
	c.QueryCount += delta.Query
	c.LastUsed = &at
	m.components[id] = c
	return c.Counters(), nil
}

func (m *memStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var errBackend = errors.New("backend unavailable")
