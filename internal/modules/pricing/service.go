// README: Pricing service computes trip cost breakdowns for drivers.
package pricing

import (
	"errors"
	"math"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

var ErrBadRequest = errors.New("invalid pricing input")

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate breaks a bid down into fuel, tolls, platform commission, and the
// driver's net. bidAmount may be zero when the driver has not priced the trip
// yet; the cost side is still useful on its own.
func (s *Service) Estimate(distanceKm float64, bidAmount types.Money) (Estimate, error) {
	if distanceKm <= 0 || bidAmount.Amount < 0 {
		return Estimate{}, ErrBadRequest
	}

	fuel := roundPaise(distanceKm / avgMileageKmPerL * fuelPricePerLiter)
	toll := roundPaise(distanceKm * tollPerKm)
	commission := bidAmount.Amount * commissionPercent / 100
	operating := fuel + toll

	est := Estimate{
		DistanceKm:    distanceKm,
		FuelCost:      types.Money{Amount: fuel, Currency: "INR"},
		TollCost:      types.Money{Amount: toll, Currency: "INR"},
		Commission:    types.Money{Amount: commission, Currency: "INR"},
		OperatingCost: types.Money{Amount: operating, Currency: "INR"},
		DriverNet:     types.Money{Amount: bidAmount.Amount - commission - operating, Currency: "INR"},
		Breakdown: map[string]int64{
			"fuel":       fuel,
			"tolls":      toll,
			"commission": commission,
			"operating":  operating,
		},
	}
	return est, nil
}

// RecommendedRate suggests a competitive per-km band: operating cost per km
// plus a 20–50% margin.
func (s *Service) RecommendedRate(distanceKm float64) (RateRange, error) {
	if distanceKm <= 0 {
		return RateRange{}, ErrBadRequest
	}
	perKm := float64(fuelPricePerLiter)/avgMileageKmPerL + tollPerKm
	return RateRange{
		MinPerKm: roundPaise(perKm * 1.2),
		MaxPerKm: roundPaise(perKm * 1.5),
	}, nil
}

func roundPaise(v float64) int64 {
	return int64(math.Round(v))
}
