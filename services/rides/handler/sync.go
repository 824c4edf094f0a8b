package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tawseela/tawseela/internal/utils"
)

// Sync handles offline queue drain requests. Clients call this once they
// detect connectivity is back.
func (h *RideHandler) Sync(c echo.Context) error {
	result, err := h.rideUC.Sync(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sync complete", result)
}
