// README: Booking aggregate, bid entity, and status definitions.
package booking

import (
	"time"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type Status string

const (
	StatusNone       Status = "none"
	StatusPending    Status = "pending"
	StatusBidding    Status = "bidding"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type TruckType string

const (
	TruckMini TruckType = "mini"
	TruckLCV  TruckType = "lcv"
	TruckFT14 TruckType = "ft14"
	TruckFT20 TruckType = "ft20"
	TruckFT32 TruckType = "ft32"
)

// TruckTypeLabels maps truck types to their customer-facing names.
var TruckTypeLabels = map[TruckType]string{
	TruckMini: "Mini Truck (1T)",
	TruckLCV:  "LCV (2.5T)",
	TruckFT14: "14ft Truck",
	TruckFT20: "20ft Container",
	TruckFT32: "32ft Container",
}

func ValidTruckType(t TruckType) bool {
	_, ok := TruckTypeLabels[t]
	return ok
}

// Bid is a driver's priced offer against a booking. Immutable once appended.
type Bid struct {
	ID                types.ID
	DriverID          types.ID
	DriverName        string
	Amount            types.Money
	Rating            float64
	ETAMinutes        int
	VehicleNo         string
	VehicleCapacity   string
	VehicleDimensions string
	CreatedAt         time.Time
}

type Booking struct {
	ID             types.ID
	CustomerID     types.ID
	PickupLocation string
	DropLocation   string
	TruckType      TruckType
	MaterialType   string
	WeightKg       float64
	Budget         types.Money
	DistanceKm     float64
	Date           string
	Status         Status
	StatusVersion  int
	// Bids in arrival order, oldest first.
	Bids          []Bid
	AcceptedBidID *types.ID
	CreatedAt     time.Time
	AcceptedAt    *time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// Bid returns the bid with the given id, or nil.
func (b *Booking) Bid(id types.ID) *Bid {
	for i := range b.Bids {
		if b.Bids[i].ID == id {
			return &b.Bids[i]
		}
	}
	return nil
}

// OpenForBids reports whether new bids may still be appended.
func (b *Booking) OpenForBids() bool {
	return b.Status == StatusPending || b.Status == StatusBidding
}

type Event struct {
	ID         int64
	BookingID  types.ID
	FromStatus Status
	ToStatus   Status
	ActorType  string
	ActorID    *types.ID
	CreatedAt  time.Time
}

// AllowedTransitions represents the booking state flow as code. The order is
// strictly forward: a booking never moves back to an earlier status.
var AllowedTransitions = map[Status][]Status{
	StatusPending:    {StatusBidding, StatusAccepted},
	StatusBidding:    {StatusAccepted},
	StatusAccepted:   {StatusInProgress},
	StatusInProgress: {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
