package memory

import (
	"context"
	"sync"

	"fidelite-backend/internal/domain"
)

// Mapping describes how the store reads and writes keys and patches of E.
type Mapping[E, P any, K comparable] struct {
	KeyOf func(E) K
	// AssignKey sets a generated key from a sequence number. Nil means callers supply
	// the key themselves.
	AssignKey func(e *E, seq int64)
	Apply     func(p P, e *E)
}

// Store is an in-memory repository.Repository keeping insertion order. Foreign keys are
// not checked, and Delete leaves rows of other stores that reference the deleted key as
// they are: a commune keeps its departement code after that departement is gone, where
// the Postgres tables would set it to null.
type Store[E, P any, K comparable] struct {
	mu    sync.RWMutex
	m     Mapping[E, P, K]
	seq   int64
	rows  map[K]E
	order []K
}

func NewStore[E, P any, K comparable](m Mapping[E, P, K]) *Store[E, P, K] {
	return &Store[E, P, K]{m: m, rows: make(map[K]E)}
}

func (s *Store[E, P, K]) Create(_ context.Context, e E) (*E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.m.AssignKey != nil {
		s.seq++
		s.m.AssignKey(&e, s.seq)
	}
	id := s.m.KeyOf(e)
	if _, exists := s.rows[id]; exists {
		return nil, domain.ErrAlreadyExists
	}
	s.rows[id] = e
	s.order = append(s.order, id)
	clone := e
	return &clone, nil
}

func (s *Store[E, P, K]) Get(_ context.Context, id K) (*E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (s *Store[E, P, K]) List(_ context.Context, limit, offset int) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []E{}
	if offset < 0 {
		offset = 0
	}
	for i := offset; i < len(s.order) && len(result) < limit; i++ {
		result = append(result, s.rows[s.order[i]])
	}
	return result, nil
}

func (s *Store[E, P, K]) Update(_ context.Context, id K, patch P) (*E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.m.Apply(patch, &e)
	s.rows[id] = e
	return &e, nil
}

func (s *Store[E, P, K]) Delete(_ context.Context, id K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
