// README: Trip cost constants and breakdown shapes.
package pricing

import "github.com/Harshdalal22/ssktrucker/internal/types"

// Platform-wide cost assumptions, in paise where monetary.
const (
	fuelPricePerLiter = 9550 // ₹95.50
	avgMileageKmPerL  = 8.0
	tollPerKm         = 250 // ₹2.50
	commissionPercent = 10
)

type Estimate struct {
	DistanceKm float64
	FuelCost   types.Money
	TollCost   types.Money
	Commission types.Money
	// OperatingCost is fuel plus tolls; what the trip costs the driver
	// before the platform cut.
	OperatingCost types.Money
	// DriverNet is the bid amount minus commission and operating cost.
	DriverNet types.Money
	Breakdown map[string]int64
}

// RateRange is a recommended competitive per-km price band, in paise.
type RateRange struct {
	MinPerKm int64
	MaxPerKm int64
}
