// README: Direct ride booking and cancellation endpoints.
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cruise/internal/backend"
	"cruise/internal/chatbot"
	"cruise/internal/types"
)

type RideHandler struct {
	chatbot *chatbot.Service
}

func NewRideHandler(svc *chatbot.Service) *RideHandler {
	return &RideHandler{chatbot: svc}
}

type bookRideReq struct {
	UserID        string           `json:"user_id"`
	Pickup        backend.Location `json:"pickup"`
	Dropoff       backend.Location `json:"dropoff"`
	VehicleType   string           `json:"vehicle_type"`
	ScheduledTime time.Time        `json:"scheduled_time"`
}

// Book handles POST /api/rides.
func (h *RideHandler) Book(c *gin.Context) {
	var req bookRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	if req.Pickup.Name == "" || req.Dropoff.Name == "" {
		writeError(c, http.StatusBadRequest, "missing pickup or dropoff")
		return
	}

	details := backend.BookingDetails{
		Pickup:        req.Pickup,
		Dropoff:       req.Dropoff,
		VehicleType:   req.VehicleType,
		ScheduledTime: req.ScheduledTime,
	}
	result, err := h.chatbot.BookRide(c.Request.Context(), req.UserID, details)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, result)
}

// AvailableVehicles handles GET /api/vehicles?lat=&lng=.
func (h *RideHandler) AvailableVehicles(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid lng")
		return
	}

	vehicles, err := h.chatbot.GetAvailableVehicles(c.Request.Context(), types.Point{Lat: lat, Lng: lng})
	if err != nil {
		writeBackendError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

// Cancel handles POST /api/rides/:id/cancel.
func (h *RideHandler) Cancel(c *gin.Context) {
	rideID := c.Param("id")
	userID := c.Query("user_id")
	if rideID == "" {
		writeError(c, http.StatusBadRequest, "missing ride id")
		return
	}

	result, err := h.chatbot.CancelRide(c.Request.Context(), userID, rideID)
	if err != nil {
		writeBackendError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
