package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/utils"
)

// PublishRequest handles ride request publication
func (h *RideHandler) PublishRequest(c echo.Context) error {
	var input models.PublishRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.rideUC.PublishRequest(c.Request().Context(), input, fingerprintFromRequest(c))
	if err != nil {
		return respondError(c, err)
	}

	if result.Queued {
		return utils.QueuedResponse(c, "Ride request queued for publication", result.Request)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride request published successfully", result.Request)
}

// ListRequests handles listing all active ride requests
func (h *RideHandler) ListRequests(c echo.Context) error {
	list, fromCache, err := h.rideUC.ListRequests(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if fromCache {
		return utils.CachedResponse(c, "Ride requests retrieved from local cache", list)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride requests retrieved successfully", list)
}
