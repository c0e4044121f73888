package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// RouteService estimates trip distances via the Google Maps Directions API.
// The booking engine treats distance as an externally supplied input; this is
// the default supplier.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// EstimateTrip returns the driving distance in km and the expected duration
// between two free-text locations.
func (s *RouteService) EstimateTrip(ctx context.Context, pickup, drop string) (float64, time.Duration, error) {
	r := &maps.DirectionsRequest{
		Origin:      pickup,
		Destination: drop,
		Mode:        maps.TravelModeDriving,
		Region:      "IN", // bias results to India
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, 0, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return float64(leg.Distance.Meters) / 1000.0, leg.Duration, nil
}
