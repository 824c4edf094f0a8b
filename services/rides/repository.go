package rides

import (
	"context"

	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/pkg/offline"
)

// RideRepo defines the interface for ride data access against the tabular
// backend. The bool return on writes reports whether the operation was
// deferred to the offline queue instead of applied.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tawseela/tawseela/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, bool, error)
	FindExactRoute(ctx context.Context, fromCity, toCity string) ([]*models.Ride, bool, error)
	ListActive(ctx context.Context) ([]*models.Ride, bool, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID string) (bool, error)
	CreateRequest(ctx context.Context, req *models.RideRequest) (*models.RideRequest, bool, error)
	ListActiveRequests(ctx context.Context) ([]*models.RideRequest, bool, error)
	Sync(ctx context.Context) (offline.DrainResult, error)
}
