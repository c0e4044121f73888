package ai

import "context"

// RouteQuery carries the trip parameters for an advisory request. Distance is
// supplied by the caller; the advisor never computes routes itself.
type RouteQuery struct {
	Pickup     string
	Drop       string
	DistanceKm float64
	TruckType  string
}

// Advisor produces human-readable route and cost commentary.
// The interface allows swapping providers (Gemini, OpenAI, etc.) in the future.
type Advisor interface {
	AnalyzeRoute(ctx context.Context, q RouteQuery) (string, error)
}
