// README: In-memory fleet store.
package fleet

import (
	"context"
	"sync"
	"time"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type MemStore struct {
	mu    sync.RWMutex
	byID  map[types.ID]*Truck
	order []types.ID
}

func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[types.ID]*Truck)}
}

func (s *MemStore) Put(ctx context.Context, t *Truck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	cp := *t
	s.byID[t.ID] = &cp
	return nil
}

func (s *MemStore) Get(ctx context.Context, id types.ID) (*Truck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *MemStore) List(ctx context.Context) ([]*Truck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Truck, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemStore) SetService(ctx context.Context, id types.ID, date time.Time, status TruckStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	t.NextServiceDate = date
	t.Status = status
	return nil
}

func (s *MemStore) SetOnline(ctx context.Context, id types.ID, online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	t.Online = online
	return nil
}
