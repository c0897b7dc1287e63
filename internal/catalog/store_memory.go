package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type MemStore struct {
	mu    sync.RWMutex
	items []Product
	newID func() string
}

// NewMemStore returns a store holding a copy of seed, in order.
func NewMemStore(seed ...Product) *MemStore {
	items := make([]Product, len(seed))
	copy(items, seed)
	return &MemStore{items: items, newID: uuid.NewString}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	return s.items[i], nil
}

func (s *MemStore) Insert(ctx context.Context, f Fields) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	p := f.product(id)
	s.items = append(s.items, p)
	return p, nil
}

func (s *MemStore) Replace(ctx context.Context, id string, f Fields) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	s.items[i] = f.product(id)
	return s.items[i], nil
}

func (s *MemStore) Remove(ctx context.Context, id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	p := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return p, nil
}

// indexOf is a linear scan; callers hold s.mu.
func (s *MemStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
