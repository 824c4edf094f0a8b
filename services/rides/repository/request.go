package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/pkg/tabular"
)

// Field names of the "Ride Requests" table
const (
	reqFieldName      = "Name"
	reqFieldFromCity  = "Starting city"
	reqFieldFromArea  = "Starting area"
	reqFieldToCity    = "Destination city"
	reqFieldToArea    = "Destination area"
	reqFieldDate      = "Date"
	reqFieldSeats     = "Seats needed"
	reqFieldWhatsApp  = "WhatsApp"
	reqFieldNote      = "Note"
	reqFieldCancelled = "Cancelled"
)

// CreateRequest publishes a ride request, queueing it while offline
func (r *rideRepo) CreateRequest(ctx context.Context, req *models.RideRequest) (*models.RideRequest, bool, error) {
	body := map[string]interface{}{"fields": requestToFields(req)}

	var rec tabular.Record
	res, err := r.client.Write(ctx, "request:create", http.MethodPost, r.tab.TablePath(r.cfg.Backend.RequestsTable), body, &rec)
	if err != nil {
		return nil, false, err
	}
	if res.Offline {
		queued := *req
		return &queued, true, nil
	}

	created := recordToRequest(rec)
	return created, false, nil
}

// ListActiveRequests returns all non-cancelled ride requests, newest first
func (r *rideRepo) ListActiveRequests(ctx context.Context) ([]*models.RideRequest, bool, error) {
	q := url.Values{}
	q.Set("filterByFormula", fmt.Sprintf("NOT({%s})", reqFieldCancelled))

	records, fromCache, err := r.listRecords(ctx, r.cfg.Backend.RequestsTable, q, "cache:requests:active")
	if err != nil {
		return nil, false, err
	}

	out := make([]*models.RideRequest, 0, len(records))
	for _, rec := range records {
		out = append(out, recordToRequest(rec))
	}
	return out, fromCache, nil
}

func requestToFields(req *models.RideRequest) map[string]interface{} {
	fields := map[string]interface{}{
		reqFieldName:     req.PassengerName,
		reqFieldFromCity: req.FromCity,
		reqFieldToCity:   req.ToCity,
		reqFieldDate:     req.Date,
		reqFieldSeats:    req.Seats,
		reqFieldWhatsApp: req.WhatsApp,
	}
	if req.FromArea != "" {
		fields[reqFieldFromArea] = req.FromArea
	}
	if req.ToArea != "" {
		fields[reqFieldToArea] = req.ToArea
	}
	if req.Note != "" {
		fields[reqFieldNote] = req.Note
	}
	return fields
}

func recordToRequest(rec tabular.Record) *models.RideRequest {
	return &models.RideRequest{
		ID:            rec.ID,
		PassengerName: rec.FieldString(reqFieldName),
		FromCity:      rec.FieldString(reqFieldFromCity),
		FromArea:      rec.FieldString(reqFieldFromArea),
		ToCity:        rec.FieldString(reqFieldToCity),
		ToArea:        rec.FieldString(reqFieldToArea),
		Date:          rec.FieldString(reqFieldDate),
		Seats:         rec.FieldInt(reqFieldSeats),
		WhatsApp:      rec.FieldString(reqFieldWhatsApp),
		Note:          rec.FieldString(reqFieldNote),
		Cancelled:     rec.FieldBool(reqFieldCancelled),
		CreatedAt:     rec.CreatedTime,
	}
}
