package rides

import (
	"context"

	"github.com/tawseela/tawseela/internal/pkg/device"
	"github.com/tawseela/tawseela/internal/pkg/models"
)

// HistoryGW is the device-history collaborator the ride use case notifies
// after successful creates and consults for ownership checks. Satisfied by
// the history service use case.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tawseela/tawseela/services/rides HistoryGW
type HistoryGW interface {
	RecordCreation(ctx context.Context, fp device.Fingerprint, whatsapp string, action models.HistoryAction, rideID string, details interface{})
	IsOwnedByThisDevice(ctx context.Context, fp device.Fingerprint, rideID string) bool
}
