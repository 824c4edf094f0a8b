package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tawseela/tawseela/internal/pkg/device"
	"github.com/tawseela/tawseela/internal/utils"
	"github.com/tawseela/tawseela/services/history"
)

// HistoryHandler handles HTTP requests for device history operations
type HistoryHandler struct {
	historyUC history.HistoryUC
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyUC history.HistoryUC) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// RegisterRoutes registers the history API routes
func (h *HistoryHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/history", h.ListHistory)
}

// ListHistory returns the history tokens recorded for the calling device.
// An unrecognized device gets an empty list, never an error.
func (h *HistoryHandler) ListHistory(c echo.Context) error {
	fp := fingerprintFromRequest(c)
	tokens := h.historyUC.ListDeviceHistory(c.Request().Context(), fp)
	return utils.SuccessResponse(c, http.StatusOK, "History retrieved successfully", map[string]interface{}{
		"device_id": h.historyUC.DeviceID(fp),
		"tokens":    tokens,
	})
}

func fingerprintFromRequest(c echo.Context) device.Fingerprint {
	req := c.Request()
	width, _ := strconv.Atoi(req.Header.Get("X-Screen-Width"))
	height, _ := strconv.Atoi(req.Header.Get("X-Screen-Height"))
	return device.Fingerprint{
		UserAgent:    req.UserAgent(),
		ScreenWidth:  width,
		ScreenHeight: height,
		Language:     req.Header.Get("Accept-Language"),
		Timezone:     req.Header.Get("X-Timezone"),
	}
}
