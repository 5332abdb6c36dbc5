package memory

import "sync"

// collection is a copy-on-write list of entities keyed by id. Every mutation
// builds a new backing slice, so a slice returned by snapshot is never written
// again and can be read without holding the lock.
type collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	id       func(T) string
	notFound error
	conflict error
}

func newCollection[T any](id func(T) string, notFound, conflict error, initial []T) *collection[T] {
	items := make([]T, len(initial))
	copy(items, initial)
	return &collection[T]{
		items:    items,
		id:       id,
		notFound: notFound,
		conflict: conflict,
	}
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

func (c *collection[T]) get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, c.notFound
}

// add appends item.
func (c *collection[T]) add(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.items {
		if c.id(existing) == c.id(item) {
			var zero T
			return zero, c.conflict
		}
	}
	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	c.items = append(next, item)
	return item, nil
}

// replace swaps the entity with the same id, keeping its position.
func (c *collection[T]) replace(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if c.id(existing) != c.id(item) {
			continue
		}
		next := make([]T, len(c.items))
		copy(next, c.items)
		next[i] = item
		c.items = next
		return item, nil
	}
	var zero T
	return zero, c.notFound
}

// remove filters out the entity with the given id.
func (c *collection[T]) remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items))
	for _, existing := range c.items {
		if c.id(existing) != id {
			next = append(next, existing)
		}
	}
	if len(next) == len(c.items) {
		return c.notFound
	}
	c.items = next
	return nil
}
