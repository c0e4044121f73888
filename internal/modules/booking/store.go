// README: Store contract; the registry service is the only writer.
package booking

import (
	"context"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

// Store persists bookings. Implementations must make each method atomic:
// AppendBid checks the open-for-bids guard and appends in one step, and
// UpdateStatus is a compare-and-set on (status, status_version). Reads return
// snapshots that callers may hold without further synchronization.
type Store interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id types.ID) (*Booking, error)
	// List returns all bookings, most recently created first.
	List(ctx context.Context) ([]*Booking, error)
	ListByCustomer(ctx context.Context, customerID types.ID) ([]*Booking, error)
	// AppendBid appends bid to the booking's sequence in arrival order.
	// Returns ErrNotFound for an unknown booking and ErrInvalidState when the
	// booking is no longer open for bids.
	AppendBid(ctx context.Context, bookingID types.ID, bid *Bid) error
	// UpdateStatus moves a booking from one status to another if and only if
	// the stored status and version still match. acceptedBidID is set when the
	// transition is an acceptance. Reports whether the swap happened.
	UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, acceptedBidID *types.ID) (bool, error)
	AppendEvent(ctx context.Context, e *Event) error
}
