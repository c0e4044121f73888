// README: Booking registry service; enforces transitions, bid intake, and selection.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

var (
	ErrNotFound     = errors.New("booking not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrInvalidState = errors.New("invalid state transition")
	ErrValidation   = errors.New("invalid booking input")
	ErrConflict     = errors.New("booking state conflict")
)

// Service is the single writer of booking state. All mutation funnels through
// it so the at-most-one-accepted-bid invariant is enforced in one place.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	CustomerID     types.ID
	PickupLocation string
	DropLocation   string
	TruckType      TruckType
	MaterialType   string
	WeightKg       float64
	Budget         types.Money
	DistanceKm     float64
	Date           string
	// AwaitTriage creates the booking in the pre-bidding pending stage
	// instead of opening it for offers immediately.
	AwaitTriage bool
}

type SubmitBidCommand struct {
	BookingID         types.ID
	DriverID          types.ID
	DriverName        string
	Amount            types.Money
	Rating            float64
	ETAMinutes        int
	VehicleNo         string
	VehicleCapacity   string
	VehicleDimensions string
}

type AcceptBidCommand struct {
	BookingID types.ID
	BidID     types.ID
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.CustomerID.IsZero() ||
		strings.TrimSpace(cmd.PickupLocation) == "" ||
		strings.TrimSpace(cmd.DropLocation) == "" ||
		strings.TrimSpace(cmd.MaterialType) == "" {
		return nil, ErrValidation
	}
	if !ValidTruckType(cmd.TruckType) {
		return nil, ErrValidation
	}
	if cmd.WeightKg <= 0 || cmd.DistanceKm <= 0 || !cmd.Budget.IsPositive() {
		return nil, ErrValidation
	}

	status := StatusBidding
	if cmd.AwaitTriage {
		status = StatusPending
	}
	now := time.Now()
	b := &Booking{
		ID:             types.NewID(),
		CustomerID:     cmd.CustomerID,
		PickupLocation: cmd.PickupLocation,
		DropLocation:   cmd.DropLocation,
		TruckType:      cmd.TruckType,
		MaterialType:   cmd.MaterialType,
		WeightKg:       cmd.WeightKg,
		Budget:         cmd.Budget,
		DistanceKm:     cmd.DistanceKm,
		Date:           cmd.Date,
		Status:         status,
		StatusVersion:  0,
		Bids:           []Bid{},
		CreatedAt:      now,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: StatusNone,
		ToStatus:   status,
		ActorType:  "customer",
		ActorID:    &cmd.CustomerID,
		CreatedAt:  now,
	})
	return s.store.Get(ctx, b.ID)
}

// SubmitBid validates and appends a driver's offer. Bids are never merged or
// deduplicated; a driver may bid against the same booking more than once.
func (s *Service) SubmitBid(ctx context.Context, cmd SubmitBidCommand) (*Bid, error) {
	if cmd.BookingID.IsZero() || cmd.DriverID.IsZero() || strings.TrimSpace(cmd.DriverName) == "" {
		return nil, ErrValidation
	}
	if !cmd.Amount.IsPositive() || cmd.ETAMinutes < 0 || cmd.Rating < 0 || cmd.Rating > 5 {
		return nil, ErrValidation
	}
	if strings.TrimSpace(cmd.VehicleNo) == "" {
		return nil, ErrValidation
	}

	bid := &Bid{
		ID:                types.NewID(),
		DriverID:          cmd.DriverID,
		DriverName:        cmd.DriverName,
		Amount:            cmd.Amount,
		Rating:            cmd.Rating,
		ETAMinutes:        cmd.ETAMinutes,
		VehicleNo:         cmd.VehicleNo,
		VehicleCapacity:   cmd.VehicleCapacity,
		VehicleDimensions: cmd.VehicleDimensions,
		CreatedAt:         time.Now(),
	}
	if err := s.store.AppendBid(ctx, cmd.BookingID, bid); err != nil {
		return nil, err
	}
	return bid, nil
}

// AcceptBid applies the customer's selection. The acceptance is final: once a
// booking carries an accepted bid id it never changes again.
func (s *Service) AcceptBid(ctx context.Context, cmd AcceptBidCommand) (*Booking, error) {
	b, err := s.store.Get(ctx, cmd.BookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, StatusAccepted) {
		return nil, ErrInvalidState
	}
	bid := b.Bid(cmd.BidID)
	if bid == nil {
		return nil, ErrBidNotFound
	}
	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, StatusAccepted, b.StatusVersion, &cmd.BidID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   StatusAccepted,
		ActorType:  "customer",
		ActorID:    &b.CustomerID,
		CreatedAt:  time.Now(),
	})
	return s.store.Get(ctx, b.ID)
}

// OpenBidding moves a pending booking into the bidding stage.
func (s *Service) OpenBidding(ctx context.Context, id types.ID) (*Booking, error) {
	return s.transition(ctx, id, StatusBidding, "system", nil)
}

// Start marks the job as underway once the driver confirms pickup.
func (s *Service) Start(ctx context.Context, id types.ID, driverID types.ID) (*Booking, error) {
	return s.transition(ctx, id, StatusInProgress, "driver", &driverID)
}

// Complete marks the job finished. Completed is terminal; the booking and all
// of its bids are retained as history.
func (s *Service) Complete(ctx context.Context, id types.ID, driverID types.ID) (*Booking, error) {
	return s.transition(ctx, id, StatusCompleted, "driver", &driverID)
}

func (s *Service) transition(ctx context.Context, id types.ID, to Status, actorType string, actorID *types.ID) (*Booking, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, to) {
		return nil, ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, to, b.StatusVersion, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   to,
		ActorType:  actorType,
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	})
	return s.store.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Booking, error) {
	return s.store.List(ctx)
}

// Open returns bookings still accepting bids, most recent first.
func (s *Service) Open(ctx context.Context) ([]*Booking, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, b := range all {
		if b.OpenForBids() {
			out = append(out, b)
		}
	}
	return out, nil
}

// ActiveForCustomer returns the customer's most recently created booking that
// has not completed yet, or ErrNotFound when every booking is done.
func (s *Service) ActiveForCustomer(ctx context.Context, customerID types.ID) (*Booking, error) {
	list, err := s.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		if b.Status != StatusCompleted {
			return b, nil
		}
	}
	return nil, ErrNotFound
}
