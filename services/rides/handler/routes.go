package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tawseela/tawseela/services/rides"
)

// RideHandler handles HTTP requests for ride marketplace operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

// RegisterRoutes registers the ride API routes
func (h *RideHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/rides", h.PublishRide)
	api.GET("/rides", h.ListRides)
	api.GET("/rides/search", h.SearchRides)
	api.POST("/rides/:rideID/cancel", h.CancelRide)
	api.GET("/rides/:rideID/whatsapp", h.ContactLink)

	api.POST("/requests", h.PublishRequest)
	api.GET("/requests", h.ListRequests)

	api.POST("/sync", h.Sync)
}
