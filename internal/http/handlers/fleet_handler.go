// README: Fleet handlers: trucks, maintenance alerts, driver presence.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshdalal22/ssktrucker/internal/modules/fleet"
	"github.com/Harshdalal22/ssktrucker/internal/types"
)

const dateLayout = "2006-01-02"

type FleetHandler struct {
	fleet *fleet.Service
}

func NewFleetHandler(svc *fleet.Service) *FleetHandler {
	return &FleetHandler{fleet: svc}
}

type truckResponse struct {
	ID              string `json:"id"`
	PlateNumber     string `json:"plate_number"`
	DriverName      string `json:"driver_name"`
	Status          string `json:"status"`
	TodaysEarnings  int64  `json:"todays_earnings"`
	FuelLevel       int    `json:"fuel_level"`
	NextServiceDate string `json:"next_service_date"`
	Online          bool   `json:"online"`
}

func toTruckResponse(t *fleet.Truck) truckResponse {
	return truckResponse{
		ID:              string(t.ID),
		PlateNumber:     t.PlateNumber,
		DriverName:      t.DriverName,
		Status:          string(t.Status),
		TodaysEarnings:  t.TodaysEarnings.Amount,
		FuelLevel:       t.FuelLevel,
		NextServiceDate: t.NextServiceDate.Format(dateLayout),
		Online:          t.Online,
	}
}

type registerTruckReq struct {
	PlateNumber     string `json:"plate_number"`
	DriverName      string `json:"driver_name"`
	FuelLevel       int    `json:"fuel_level"`
	NextServiceDate string `json:"next_service_date"`
}

func (h *FleetHandler) Register(c *gin.Context) {
	var req registerTruckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	date, err := time.Parse(dateLayout, req.NextServiceDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid next_service_date, want YYYY-MM-DD")
		return
	}
	truck, err := h.fleet.Register(c.Request.Context(), fleet.Truck{
		PlateNumber:     req.PlateNumber,
		DriverName:      req.DriverName,
		FuelLevel:       req.FuelLevel,
		NextServiceDate: date,
	})
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toTruckResponse(truck))
}

func (h *FleetHandler) List(c *gin.Context) {
	trucks, err := h.fleet.List(c.Request.Context())
	if err != nil {
		writeFleetError(c, err)
		return
	}
	out := make([]truckResponse, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, toTruckResponse(t))
	}
	writeJSON(c, http.StatusOK, gin.H{"trucks": out})
}

type alertResponse struct {
	Truck    truckResponse `json:"truck"`
	Type     string        `json:"type"`
	DiffDays int           `json:"diff_days"`
}

func (h *FleetHandler) Alerts(c *gin.Context) {
	alerts, err := h.fleet.Alerts(c.Request.Context(), time.Now())
	if err != nil {
		writeFleetError(c, err)
		return
	}
	out := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		truck := a.Truck
		out = append(out, alertResponse{
			Truck:    toTruckResponse(&truck),
			Type:     string(a.Type),
			DiffDays: a.DiffDays,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"alerts": out})
}

type scheduleMaintenanceReq struct {
	Date string `json:"date"`
}

func (h *FleetHandler) ScheduleMaintenance(c *gin.Context) {
	id := c.Param("id")
	var req scheduleMaintenanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}
	truck, err := h.fleet.ScheduleMaintenance(c.Request.Context(), types.ID(id), date)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTruckResponse(truck))
}

func (h *FleetHandler) OnlineDrivers(c *gin.Context) {
	ids, err := h.fleet.OnlineDrivers(c.Request.Context())
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"driver_ids": ids})
}

type setOnlineReq struct {
	Online *bool `json:"online"`
}

func (h *FleetHandler) SetOnline(c *gin.Context) {
	id := c.Param("id")
	var req setOnlineReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Online == nil {
		writeError(c, http.StatusBadRequest, "missing online flag")
		return
	}
	truck, err := h.fleet.SetOnline(c.Request.Context(), types.ID(id), *req.Online)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTruckResponse(truck))
}
