// README: Booking handlers: create, query, bid intake, and selection.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshdalal22/ssktrucker/internal/modules/booking"
	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type createBookingReq struct {
	CustomerID     string  `json:"customer_id"`
	PickupLocation string  `json:"pickup_location"`
	DropLocation   string  `json:"drop_location"`
	TruckType      string  `json:"truck_type"`
	MaterialType   string  `json:"material_type"`
	WeightKg       float64 `json:"weight_kg"`
	BudgetRupees   int64   `json:"budget"`
	DistanceKm     float64 `json:"distance_km"`
	Date           string  `json:"date"`
	AwaitTriage    bool    `json:"await_triage"`
}

type bidResponse struct {
	ID                string    `json:"id"`
	DriverID          string    `json:"driver_id"`
	DriverName        string    `json:"driver_name"`
	Amount            int64     `json:"amount"`
	Rating            float64   `json:"rating"`
	ETAMinutes        int       `json:"eta_minutes"`
	VehicleNo         string    `json:"vehicle_no"`
	VehicleCapacity   string    `json:"vehicle_capacity,omitempty"`
	VehicleDimensions string    `json:"vehicle_dimensions,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type bookingResponse struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customer_id"`
	PickupLocation string        `json:"pickup_location"`
	DropLocation   string        `json:"drop_location"`
	TruckType      string        `json:"truck_type"`
	TruckTypeLabel string        `json:"truck_type_label"`
	MaterialType   string        `json:"material_type"`
	WeightKg       float64       `json:"weight_kg"`
	Budget         int64         `json:"budget"`
	DistanceKm     float64       `json:"distance_km"`
	Date           string        `json:"date"`
	Status         string        `json:"status"`
	Bids           []bidResponse `json:"bids"`
	AcceptedBidID  *string       `json:"accepted_bid_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

func toBookingResponse(b *booking.Booking) bookingResponse {
	resp := bookingResponse{
		ID:             string(b.ID),
		CustomerID:     string(b.CustomerID),
		PickupLocation: b.PickupLocation,
		DropLocation:   b.DropLocation,
		TruckType:      string(b.TruckType),
		TruckTypeLabel: booking.TruckTypeLabels[b.TruckType],
		MaterialType:   b.MaterialType,
		WeightKg:       b.WeightKg,
		Budget:         b.Budget.Amount,
		DistanceKm:     b.DistanceKm,
		Date:           b.Date,
		Status:         string(b.Status),
		Bids:           make([]bidResponse, 0, len(b.Bids)),
		CreatedAt:      b.CreatedAt,
	}
	for _, bid := range b.Bids {
		resp.Bids = append(resp.Bids, toBidResponse(&bid))
	}
	if b.AcceptedBidID != nil {
		v := string(*b.AcceptedBidID)
		resp.AcceptedBidID = &v
	}
	return resp
}

func toBidResponse(bid *booking.Bid) bidResponse {
	return bidResponse{
		ID:                string(bid.ID),
		DriverID:          string(bid.DriverID),
		DriverName:        bid.DriverName,
		Amount:            bid.Amount.Amount,
		Rating:            bid.Rating,
		ETAMinutes:        bid.ETAMinutes,
		VehicleNo:         bid.VehicleNo,
		VehicleCapacity:   bid.VehicleCapacity,
		VehicleDimensions: bid.VehicleDimensions,
		CreatedAt:         bid.CreatedAt,
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.booking.Create(c.Request.Context(), booking.CreateCommand{
		CustomerID:     types.ID(req.CustomerID),
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		TruckType:      booking.TruckType(req.TruckType),
		MaterialType:   req.MaterialType,
		WeightKg:       req.WeightKg,
		Budget:         types.Rupees(req.BudgetRupees),
		DistanceKm:     req.DistanceKm,
		Date:           req.Date,
		AwaitTriage:    req.AwaitTriage,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toBookingResponse(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	var (
		list []*booking.Booking
		err  error
	)
	if c.Query("open") == "true" {
		list, err = h.booking.Open(c.Request.Context())
	} else {
		list, err = h.booking.List(c.Request.Context())
	}
	if err != nil {
		writeBookingError(c, err)
		return
	}
	out := make([]bookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBookingResponse(b))
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	b, err := h.booking.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) ActiveForCustomer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing customer id")
		return
	}
	b, err := h.booking.ActiveForCustomer(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBookingResponse(b))
}

type submitBidReq struct {
	DriverID          string  `json:"driver_id"`
	DriverName        string  `json:"driver_name"`
	AmountRupees      int64   `json:"amount"`
	Rating            float64 `json:"rating"`
	ETAMinutes        int     `json:"eta_minutes"`
	VehicleNo         string  `json:"vehicle_no"`
	VehicleCapacity   string  `json:"vehicle_capacity"`
	VehicleDimensions string  `json:"vehicle_dimensions"`
}

func (h *BookingHandler) SubmitBid(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	var req submitBidReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	bid, err := h.booking.SubmitBid(c.Request.Context(), booking.SubmitBidCommand{
		BookingID:         types.ID(id),
		DriverID:          types.ID(req.DriverID),
		DriverName:        req.DriverName,
		Amount:            types.Rupees(req.AmountRupees),
		Rating:            req.Rating,
		ETAMinutes:        req.ETAMinutes,
		VehicleNo:         req.VehicleNo,
		VehicleCapacity:   req.VehicleCapacity,
		VehicleDimensions: req.VehicleDimensions,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toBidResponse(bid))
}

type acceptBidReq struct {
	BidID string `json:"bid_id"`
}

func (h *BookingHandler) AcceptBid(c *gin.Context) {
	id := c.Param("id")
	var req acceptBidReq
	if err := c.ShouldBindJSON(&req); err != nil || req.BidID == "" {
		writeError(c, http.StatusBadRequest, "missing bid_id")
		return
	}
	b, err := h.booking.AcceptBid(c.Request.Context(), booking.AcceptBidCommand{
		BookingID: types.ID(id),
		BidID:     types.ID(req.BidID),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) OpenBidding(c *gin.Context) {
	h.transition(c, func(id types.ID) (*booking.Booking, error) {
		return h.booking.OpenBidding(c.Request.Context(), id)
	})
}

func (h *BookingHandler) Start(c *gin.Context) {
	driverID := types.ID(c.Query("driver_id"))
	h.transition(c, func(id types.ID) (*booking.Booking, error) {
		return h.booking.Start(c.Request.Context(), id, driverID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	driverID := types.ID(c.Query("driver_id"))
	h.transition(c, func(id types.ID) (*booking.Booking, error) {
		return h.booking.Complete(c.Request.Context(), id, driverID)
	})
}

func (h *BookingHandler) transition(c *gin.Context, fn func(types.ID) (*booking.Booking, error)) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	b, err := fn(types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBookingResponse(b))
}
