package rides

import (
	"context"

	"github.com/tawseela/tawseela/internal/pkg/device"
	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/pkg/offline"
)

// PublishRideResult is the outcome of publishing a ride
type PublishRideResult struct {
	Ride *models.Ride `json:"ride"`
	// Queued means the backend was unreachable and the create was deferred
	// to the offline queue; the ride has no backend id yet.
	Queued bool `json:"queued,omitempty"`
}

// PublishRequestResult is the outcome of publishing a ride request
type PublishRequestResult struct {
	Request *models.RideRequest `json:"request"`
	Queued  bool                `json:"queued,omitempty"`
}

// RideUC defines the interface for ride business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tawseela/tawseela/services/rides RideUC
type RideUC interface {
	PublishRide(ctx context.Context, input models.PublishRideInput, fp device.Fingerprint) (*PublishRideResult, error)
	SearchRides(ctx context.Context, fromCity, toCity string) ([]*models.Ride, bool, error)
	ListRides(ctx context.Context) ([]*models.Ride, bool, error)
	CancelRide(ctx context.Context, rideID string, fp device.Fingerprint) (bool, error)
	ContactLink(ctx context.Context, rideID, message string) (string, error)
	PublishRequest(ctx context.Context, input models.PublishRequestInput, fp device.Fingerprint) (*PublishRequestResult, error)
	ListRequests(ctx context.Context) ([]*models.RideRequest, bool, error)
	Sync(ctx context.Context) (offline.DrainResult, error)
}
