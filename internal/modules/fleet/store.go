// README: Fleet store contract.
package fleet

import (
	"context"
	"time"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type Store interface {
	Put(ctx context.Context, t *Truck) error
	Get(ctx context.Context, id types.ID) (*Truck, error)
	List(ctx context.Context) ([]*Truck, error)
	// SetService updates the next service date and status in one step so a
	// scheduled maintenance atomically clears the alert condition.
	SetService(ctx context.Context, id types.ID, date time.Time, status TruckStatus) error
	SetOnline(ctx context.Context, id types.ID, online bool) error
}
