// README: Advisory + route estimate handlers backed by Gemini and Google Maps.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshdalal22/ssktrucker/internal/ai"
	"github.com/Harshdalal22/ssktrucker/internal/maps"
	"github.com/Harshdalal22/ssktrucker/internal/modules/booking"
)

type AIHandler struct {
	advisory *ai.Service
	routes   *maps.RouteService
}

func NewAIHandler(advisory *ai.Service, routes *maps.RouteService) *AIHandler {
	return &AIHandler{advisory: advisory, routes: routes}
}

type routeAdvisoryReq struct {
	Pickup     string  `json:"pickup"`
	Drop       string  `json:"drop"`
	DistanceKm float64 `json:"distance_km"`
	TruckType  string  `json:"truck_type"`
}

func (h *AIHandler) AnalyzeRoute(c *gin.Context) {
	var req routeAdvisoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Pickup == "" || req.Drop == "" {
		writeError(c, http.StatusBadRequest, "pickup and drop are required")
		return
	}
	if req.TruckType != "" && !booking.ValidTruckType(booking.TruckType(req.TruckType)) {
		writeError(c, http.StatusBadRequest, "unknown truck type")
		return
	}

	analysis := h.advisory.AnalyzeRoute(c.Request.Context(), ai.RouteQuery{
		Pickup:     req.Pickup,
		Drop:       req.Drop,
		DistanceKm: req.DistanceKm,
		TruckType:  booking.TruckTypeLabels[booking.TruckType(req.TruckType)],
	})
	writeJSON(c, http.StatusOK, gin.H{"analysis": analysis})
}

func (h *AIHandler) EstimateRoute(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "route estimation is not configured")
		return
	}
	pickup := c.Query("pickup")
	drop := c.Query("drop")
	if pickup == "" || drop == "" {
		writeError(c, http.StatusBadRequest, "pickup and drop are required")
		return
	}

	km, duration, err := h.routes.EstimateTrip(c.Request.Context(), pickup, drop)
	if err != nil {
		writeError(c, http.StatusBadGateway, "route lookup failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"distance_km":      km,
		"duration_minutes": int(duration.Minutes()),
	})
}
