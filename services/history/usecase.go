package history

import (
	"context"

	"github.com/tawseela/tawseela/internal/pkg/device"
	"github.com/tawseela/tawseela/internal/pkg/models"
)

// HistoryUC defines the device-history business logic. Every method degrades
// to "no history" on storage or parse problems; none of them ever surfaces
// an error to the caller.
type HistoryUC interface {
	DeviceID(fp device.Fingerprint) string
	RecordCreation(ctx context.Context, fp device.Fingerprint, whatsapp string, action models.HistoryAction, rideID string, details interface{})
	ListDeviceHistory(ctx context.Context, fp device.Fingerprint) []models.DeviceHistoryToken
	PurgeExpired(ctx context.Context) int
	IsOwnedByThisDevice(ctx context.Context, fp device.Fingerprint, rideID string) bool
}
