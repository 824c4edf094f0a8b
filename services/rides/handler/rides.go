package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/pkg/offline"
	"github.com/tawseela/tawseela/internal/pkg/tabular"
	"github.com/tawseela/tawseela/internal/utils"
	"github.com/tawseela/tawseela/services/rides"
)

// PublishRide handles ride publication requests
func (h *RideHandler) PublishRide(c echo.Context) error {
	var input models.PublishRideInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.rideUC.PublishRide(c.Request().Context(), input, fingerprintFromRequest(c))
	if err != nil {
		return respondError(c, err)
	}

	if result.Queued {
		return utils.QueuedResponse(c, "Ride queued for publication", result.Ride)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride published successfully", result.Ride)
}

// ListRides handles listing all active rides
func (h *RideHandler) ListRides(c echo.Context) error {
	list, fromCache, err := h.rideUC.ListRides(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if fromCache {
		return utils.CachedResponse(c, "Rides retrieved from local cache", list)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// SearchRides handles route search requests
func (h *RideHandler) SearchRides(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")

	list, fromCache, err := h.rideUC.SearchRides(c.Request().Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	if fromCache {
		return utils.CachedResponse(c, "Rides retrieved from local cache", list)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", list)
}

// CancelRide handles ride cancellation requests
func (h *RideHandler) CancelRide(c echo.Context) error {
	rideID := c.Param("rideID")

	queued, err := h.rideUC.CancelRide(c.Request().Context(), rideID, fingerprintFromRequest(c))
	if err != nil {
		return respondError(c, err)
	}

	if queued {
		return utils.QueuedResponse(c, "Cancellation queued", nil)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", nil)
}

// ContactLink handles WhatsApp contact link requests for a ride
func (h *RideHandler) ContactLink(c echo.Context) error {
	rideID := c.Param("rideID")
	if rideID == "" {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	link, err := h.rideUC.ContactLink(c.Request().Context(), rideID, c.QueryParam("text"))
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Contact link generated", map[string]string{"link": link})
}

// respondError maps domain errors onto HTTP responses
func respondError(c echo.Context, err error) error {
	var validation *rides.ValidationError
	if errors.As(err, &validation) {
		return utils.BadRequestResponse(c, validation.Error())
	}

	switch {
	case errors.Is(err, utils.ErrInvalidPhoneNumber):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, rides.ErrNotOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, rides.ErrRideNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, offline.ErrOffline):
		return utils.ServiceUnavailableResponse(c, "No connectivity and no cached data")
	}

	var backend *tabular.Error
	if errors.As(err, &backend) {
		switch backend.Category {
		case tabular.CategoryAuth:
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Backend rejected credentials")
		case tabular.CategoryFieldMismatch:
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Backend table schema mismatch")
		}
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "Backend request failed")
	}

	return utils.InternalServerErrorResponse(c, "")
}
