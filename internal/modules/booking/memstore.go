// README: In-memory store; the default registry backing when no DSN is configured.
package booking

import (
	"context"
	"sync"
	"time"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

// MemStore keeps the whole registry in process memory. The write lock
// serializes every mutation, which is what makes concurrent bid submissions
// and accepts on the same booking linearizable. Reads copy under the read
// lock so callers get stable snapshots.
type MemStore struct {
	mu sync.RWMutex
	// byID owns the canonical booking records.
	byID map[types.ID]*Booking
	// order holds ids most recently created first.
	order  []types.ID
	events []Event
	nextEv int64
}

func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[types.ID]*Booking)}
}

func (s *MemStore) Create(ctx context.Context, b *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneBooking(b)
	s.byID[cp.ID] = cp
	s.order = append([]types.ID{cp.ID}, s.order...)
	return nil
}

func (s *MemStore) Get(ctx context.Context, id types.ID) (*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneBooking(b), nil
}

func (s *MemStore) List(ctx context.Context) ([]*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Booking, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneBooking(s.byID[id]))
	}
	return out, nil
}

func (s *MemStore) ListByCustomer(ctx context.Context, customerID types.ID) ([]*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Booking
	for _, id := range s.order {
		if b := s.byID[id]; b.CustomerID == customerID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (s *MemStore) AppendBid(ctx context.Context, bookingID types.ID, bid *Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[bookingID]
	if !ok {
		return ErrNotFound
	}
	if !b.OpenForBids() {
		return ErrInvalidState
	}
	b.Bids = append(b.Bids, *bid)
	return nil
}

func (s *MemStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, acceptedBidID *types.ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return false, ErrNotFound
	}
	if b.Status != from || b.StatusVersion != version {
		return false, nil
	}
	now := time.Now()
	b.Status = to
	b.StatusVersion++
	switch to {
	case StatusAccepted:
		if acceptedBidID != nil {
			v := *acceptedBidID
			b.AcceptedBidID = &v
		}
		b.AcceptedAt = &now
	case StatusInProgress:
		b.StartedAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}
	return true, nil
}

func (s *MemStore) AppendEvent(ctx context.Context, e *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEv++
	ev := *e
	ev.ID = s.nextEv
	s.events = append(s.events, ev)
	return nil
}

// Events returns a copy of the transition log, oldest first.
func (s *MemStore) Events(ctx context.Context, bookingID types.ID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.BookingID == bookingID {
			out = append(out, e)
		}
	}
	return out, nil
}

func cloneBooking(b *Booking) *Booking {
	cp := *b
	cp.Bids = make([]Bid, len(b.Bids))
	copy(cp.Bids, b.Bids)
	if b.AcceptedBidID != nil {
		v := *b.AcceptedBidID
		cp.AcceptedBidID = &v
	}
	cp.AcceptedAt = cloneTime(b.AcceptedAt)
	cp.StartedAt = cloneTime(b.StartedAt)
	cp.CompletedAt = cloneTime(b.CompletedAt)
	return &cp
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
