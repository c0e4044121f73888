// README: HTTP server wiring; Routes builds the gin engine with every endpoint.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Harshdalal22/ssktrucker/internal/http/handlers"
	"github.com/Harshdalal22/ssktrucker/internal/http/middleware"
)

type Server struct {
	Bookings *handlers.BookingHandler
	Fleet    *handlers.FleetHandler
	Chat     *handlers.ChatHandler
	AI       *handlers.AIHandler
	Pricing  *handlers.PricingHandler
	Logger   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/bookings", s.Bookings.Create)
	api.GET("/bookings", s.Bookings.List)
	api.GET("/bookings/:id", s.Bookings.Get)
	api.GET("/customers/:id/active-booking", s.Bookings.ActiveForCustomer)
	api.POST("/bookings/:id/bids", s.Bookings.SubmitBid)
	api.POST("/bookings/:id/accept", s.Bookings.AcceptBid)
	api.POST("/bookings/:id/open", s.Bookings.OpenBidding)
	api.POST("/bookings/:id/start", s.Bookings.Start)
	api.POST("/bookings/:id/complete", s.Bookings.Complete)

	api.GET("/bookings/:id/chat", s.Chat.History)
	api.POST("/bookings/:id/chat", s.Chat.Send)

	api.POST("/advisory/route", s.AI.AnalyzeRoute)
	api.GET("/routes/estimate", s.AI.EstimateRoute)

	api.GET("/pricing/estimate", s.Pricing.Estimate)
	api.GET("/pricing/rate", s.Pricing.RecommendedRate)

	api.GET("/fleet/trucks", s.Fleet.List)
	api.POST("/fleet/trucks", s.Fleet.Register)
	api.GET("/fleet/alerts", s.Fleet.Alerts)
	api.GET("/fleet/online", s.Fleet.OnlineDrivers)
	api.POST("/fleet/trucks/:id/maintenance", s.Fleet.ScheduleMaintenance)
	api.POST("/fleet/trucks/:id/online", s.Fleet.SetOnline)

	r.GET("/ws/bookings/:id", s.Chat.ServeWS)

	return r
}
