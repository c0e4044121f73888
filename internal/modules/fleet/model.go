// README: Truck aggregate and maintenance alert derivation.
package fleet

import (
	"math"
	"time"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type TruckStatus string

const (
	StatusIdle        TruckStatus = "idle"
	StatusActive      TruckStatus = "active"
	StatusMaintenance TruckStatus = "maintenance"
)

type Truck struct {
	ID              types.ID
	PlateNumber     string
	DriverName      string
	Status          TruckStatus
	TodaysEarnings  types.Money
	FuelLevel       int
	NextServiceDate time.Time
	Online          bool
}

type AlertType string

const (
	AlertOverdue  AlertType = "overdue"
	AlertUpcoming AlertType = "upcoming"
)

// upcomingWindowDays is how far ahead a service date counts as an alert.
const upcomingWindowDays = 7

// Alert is derived state: it is recomputed from the service date against the
// current day, never stored.
type Alert struct {
	Truck    Truck
	Type     AlertType
	DiffDays int
}

// ServiceAlert computes the maintenance alert for a truck as of now, and
// reports whether one applies. DiffDays is negative when the date has passed.
func ServiceAlert(t Truck, now time.Time) (Alert, bool) {
	diff := daysUntil(t.NextServiceDate, now)
	switch {
	case diff < 0:
		return Alert{Truck: t, Type: AlertOverdue, DiffDays: diff}, true
	case diff <= upcomingWindowDays:
		return Alert{Truck: t, Type: AlertUpcoming, DiffDays: diff}, true
	default:
		return Alert{}, false
	}
}

func daysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}
