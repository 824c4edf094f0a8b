package usecase

import (
	"context"
	"strings"

	"github.com/tawseela/tawseela/internal/pkg/device"
	"github.com/tawseela/tawseela/internal/pkg/logger"
	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/pkg/offline"
	"github.com/tawseela/tawseela/internal/utils"
	"github.com/tawseela/tawseela/services/rides"
)

// rideUC implements rides.RideUC
type rideUC struct {
	cfg     *models.Config
	repo    rides.RideRepo
	history rides.HistoryGW
}

// NewRideUC creates the ride use case
func NewRideUC(cfg *models.Config, repo rides.RideRepo, history rides.HistoryGW) rides.RideUC {
	return &rideUC{
		cfg:     cfg,
		repo:    repo,
		history: history,
	}
}

// PublishRide validates and creates a ride, then tags it with a device
// history token so this device can recognize it later.
func (uc *rideUC) PublishRide(ctx context.Context, input models.PublishRideInput, fp device.Fingerprint) (*rides.PublishRideResult, error) {
	if err := validateRideInput(input); err != nil {
		return nil, err
	}

	whatsapp, err := utils.NormalizePhoneNumber(input.WhatsApp)
	if err != nil {
		return nil, err
	}

	ride := &models.Ride{
		DriverName: strings.TrimSpace(input.DriverName),
		FromCity:   strings.TrimSpace(input.FromCity),
		FromArea:   strings.TrimSpace(input.FromArea),
		ToCity:     strings.TrimSpace(input.ToCity),
		ToArea:     strings.TrimSpace(input.ToArea),
		Date:       input.Date,
		Time:       input.Time,
		Seats:      input.Seats,
		Price:      input.Price,
		WhatsApp:   whatsapp,
		CarType:    strings.TrimSpace(input.CarType),
		Note:       strings.TrimSpace(input.Note),
	}

	created, queued, err := uc.repo.CreateRide(ctx, ride)
	if err != nil {
		logger.Error("Failed to publish ride",
			logger.String("from", ride.FromCity),
			logger.String("to", ride.ToCity),
			logger.Err(err))
		return nil, err
	}

	if queued {
		// No backend id yet; a history token cannot be keyed. The token is
		// written when the user republishes or the record shows up in search.
		logger.Info("Ride publish deferred to offline queue",
			logger.String("from", ride.FromCity),
			logger.String("to", ride.ToCity))
		return &rides.PublishRideResult{Ride: created, Queued: true}, nil
	}

	uc.history.RecordCreation(ctx, fp, created.WhatsApp, models.HistoryActionPublished, created.ID, created)

	logger.Info("Published ride",
		logger.String("ride_id", created.ID),
		logger.String("from", created.FromCity),
		logger.String("to", created.ToCity))

	return &rides.PublishRideResult{Ride: created}, nil
}

// ListRides returns all non-cancelled rides, newest first
func (uc *rideUC) ListRides(ctx context.Context) ([]*models.Ride, bool, error) {
	return uc.repo.ListActive(ctx)
}

// CancelRide soft-deletes a ride. Only the device holding a valid history
// token for the ride may cancel it.
func (uc *rideUC) CancelRide(ctx context.Context, rideID string, fp device.Fingerprint) (bool, error) {
	if rideID == "" {
		return false, rides.NewValidationError("ride_id", "required")
	}
	if !uc.history.IsOwnedByThisDevice(ctx, fp, rideID) {
		return false, rides.ErrNotOwner
	}

	queued, err := uc.repo.CancelRide(ctx, rideID)
	if err != nil {
		logger.Error("Failed to cancel ride",
			logger.String("ride_id", rideID),
			logger.Err(err))
		return false, err
	}

	logger.Info("Cancelled ride",
		logger.String("ride_id", rideID),
		logger.Bool("queued", queued))
	return queued, nil
}

// ContactLink builds the WhatsApp deep link for contacting a ride's driver
func (uc *rideUC) ContactLink(ctx context.Context, rideID, message string) (string, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return "", err
	}
	return utils.WhatsAppLink(ride.WhatsApp, message)
}

// PublishRequest validates and creates a passenger ride request
func (uc *rideUC) PublishRequest(ctx context.Context, input models.PublishRequestInput, fp device.Fingerprint) (*rides.PublishRequestResult, error) {
	if err := validateRequestInput(input); err != nil {
		return nil, err
	}

	whatsapp, err := utils.NormalizePhoneNumber(input.WhatsApp)
	if err != nil {
		return nil, err
	}

	req := &models.RideRequest{
		PassengerName: strings.TrimSpace(input.PassengerName),
		FromCity:      strings.TrimSpace(input.FromCity),
		FromArea:      strings.TrimSpace(input.FromArea),
		ToCity:        strings.TrimSpace(input.ToCity),
		ToArea:        strings.TrimSpace(input.ToArea),
		Date:          input.Date,
		Seats:         input.Seats,
		WhatsApp:      whatsapp,
		Note:          strings.TrimSpace(input.Note),
	}

	created, queued, err := uc.repo.CreateRequest(ctx, req)
	if err != nil {
		logger.Error("Failed to publish ride request",
			logger.String("from", req.FromCity),
			logger.String("to", req.ToCity),
			logger.Err(err))
		return nil, err
	}

	if queued {
		return &rides.PublishRequestResult{Request: created, Queued: true}, nil
	}

	uc.history.RecordCreation(ctx, fp, created.WhatsApp, models.HistoryActionRequested, created.ID, created)

	logger.Info("Published ride request",
		logger.String("request_id", created.ID),
		logger.String("from", created.FromCity),
		logger.String("to", created.ToCity))

	return &rides.PublishRequestResult{Request: created}, nil
}

// ListRequests returns all non-cancelled ride requests, newest first
func (uc *rideUC) ListRequests(ctx context.Context) ([]*models.RideRequest, bool, error) {
	return uc.repo.ListActiveRequests(ctx)
}

// Sync drains the offline action queue. Caller-triggered once connectivity
// is confirmed restored.
func (uc *rideUC) Sync(ctx context.Context) (offline.DrainResult, error) {
	result, err := uc.repo.Sync(ctx)
	if err != nil {
		return result, err
	}
	if result.Processed > 0 {
		logger.Info("Drained offline queue",
			logger.Int("processed", result.Processed),
			logger.Int("succeeded", result.Succeeded),
			logger.Int("failed", result.Failed))
	}
	return result, nil
}

func validateRideInput(input models.PublishRideInput) error {
	if strings.TrimSpace(input.DriverName) == "" {
		return rides.NewValidationError("driver_name", "required")
	}
	if strings.TrimSpace(input.FromCity) == "" {
		return rides.NewValidationError("from_city", "required")
	}
	if strings.TrimSpace(input.ToCity) == "" {
		return rides.NewValidationError("to_city", "required")
	}
	if input.Date == "" {
		return rides.NewValidationError("date", "required")
	}
	if input.Seats < 0 {
		return rides.NewValidationError("seats", "must not be negative")
	}
	if err := validatePrice(input.Price); err != nil {
		return err
	}
	return nil
}

func validateRequestInput(input models.PublishRequestInput) error {
	if strings.TrimSpace(input.PassengerName) == "" {
		return rides.NewValidationError("passenger_name", "required")
	}
	if strings.TrimSpace(input.FromCity) == "" {
		return rides.NewValidationError("from_city", "required")
	}
	if strings.TrimSpace(input.ToCity) == "" {
		return rides.NewValidationError("to_city", "required")
	}
	if input.Date == "" {
		return rides.NewValidationError("date", "required")
	}
	if input.Seats < 1 {
		return rides.NewValidationError("seats", "at least one seat is needed")
	}
	return nil
}

// validatePrice accepts a non-negative numeric string. The price stays a
// string end to end; the backend column is text.
func validatePrice(price string) error {
	if price == "" {
		return rides.NewValidationError("price", "required")
	}
	for _, r := range price {
		if (r < '0' || r > '9') && r != '.' {
			return rides.NewValidationError("price", "must be a non-negative number")
		}
	}
	if strings.Count(price, ".") > 1 || strings.HasPrefix(price, ".") {
		return rides.NewValidationError("price", "must be a non-negative number")
	}
	return nil
}
