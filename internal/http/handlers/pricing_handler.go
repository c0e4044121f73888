// README: Pricing handlers: trip cost estimate and recommended per-km rate.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Harshdalal22/ssktrucker/internal/modules/pricing"
	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type PricingHandler struct {
	pricing *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{pricing: svc}
}

func (h *PricingHandler) Estimate(c *gin.Context) {
	distanceKm, err := strconv.ParseFloat(c.Query("distance_km"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "distance_km must be a number")
		return
	}

	var bid types.Money
	if raw := c.Query("bid_amount"); raw != "" {
		rupees, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "bid_amount must be an integer rupee amount")
			return
		}
		bid = types.Rupees(rupees)
	}

	est, err := h.pricing.Estimate(distanceKm, bid)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, est)
}

func (h *PricingHandler) RecommendedRate(c *gin.Context) {
	distanceKm, err := strconv.ParseFloat(c.Query("distance_km"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "distance_km must be a number")
		return
	}
	rate, err := h.pricing.RecommendedRate(distanceKm)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rate)
}
