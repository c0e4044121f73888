// README: Fleet service; maintenance scheduling and driver presence.
package fleet

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

var (
	ErrNotFound   = errors.New("truck not found")
	ErrValidation = errors.New("invalid fleet input")
)

type Service struct {
	store    Store
	presence *PresenceStore
	logger   *zap.Logger
}

// NewService builds the fleet service. presence may be nil when Redis is not
// configured; presence updates are then store-only.
func NewService(store Store, presence *PresenceStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, presence: presence, logger: logger}
}

func (s *Service) Register(ctx context.Context, t Truck) (*Truck, error) {
	if t.PlateNumber == "" || t.DriverName == "" || t.NextServiceDate.IsZero() {
		return nil, ErrValidation
	}
	if t.ID.IsZero() {
		t.ID = types.NewID()
	}
	if t.Status == "" {
		t.Status = StatusIdle
	}
	if err := s.store.Put(ctx, &t); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, t.ID)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Truck, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Truck, error) {
	return s.store.List(ctx)
}

// Alerts returns trucks whose next service date is overdue or due within the
// upcoming window, as of now.
func (s *Service) Alerts(ctx context.Context, now time.Time) ([]Alert, error) {
	trucks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Alert
	for _, t := range trucks {
		if a, ok := ServiceAlert(*t, now); ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// ScheduleMaintenance books a service visit: the next service date moves to
// the given day and the truck returns to active duty, clearing its alert.
func (s *Service) ScheduleMaintenance(ctx context.Context, id types.ID, date time.Time) (*Truck, error) {
	if date.IsZero() {
		return nil, ErrValidation
	}
	if err := s.store.SetService(ctx, id, date, StatusActive); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// SetOnline flips the driver's availability. The presence set is best-effort;
// a Redis failure does not undo the store update.
func (s *Service) SetOnline(ctx context.Context, id types.ID, online bool) (*Truck, error) {
	if err := s.store.SetOnline(ctx, id, online); err != nil {
		return nil, err
	}
	if s.presence != nil {
		if err := s.presence.SetOnline(ctx, id, online); err != nil {
			s.logger.Warn("presence update failed", zap.String("truck_id", string(id)), zap.Error(err))
		}
	}
	return s.store.Get(ctx, id)
}

// OnlineDrivers returns the ids in the presence set. Without Redis it falls
// back to scanning the store.
func (s *Service) OnlineDrivers(ctx context.Context) ([]types.ID, error) {
	if s.presence != nil {
		return s.presence.Online(ctx)
	}
	trucks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	var ids []types.ID
	for _, t := range trucks {
		if t.Online {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}
