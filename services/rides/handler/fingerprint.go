package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tawseela/tawseela/internal/pkg/device"
)

// Headers carrying the client's environment tuple. Screen size and timezone
// are not standard HTTP headers, so the client sends them explicitly.
const (
	headerScreenWidth  = "X-Screen-Width"
	headerScreenHeight = "X-Screen-Height"
	headerTimezone     = "X-Timezone"
)

// fingerprintFromRequest assembles the device fingerprint from request
// headers. Missing attributes stay zero; the derived id degrades gracefully
// rather than failing the request.
func fingerprintFromRequest(c echo.Context) device.Fingerprint {
	req := c.Request()
	width, _ := strconv.Atoi(req.Header.Get(headerScreenWidth))
	height, _ := strconv.Atoi(req.Header.Get(headerScreenHeight))
	return device.Fingerprint{
		UserAgent:    req.UserAgent(),
		ScreenWidth:  width,
		ScreenHeight: height,
		Language:     req.Header.Get("Accept-Language"),
		Timezone:     req.Header.Get(headerTimezone),
	}
}
