package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/pkg/offline"
	"github.com/tawseela/tawseela/internal/pkg/tabular"
	"github.com/tawseela/tawseela/services/rides"
)

// Field names of the "Published Rides" table. These are owned by the backend
// base; renaming a column there without touching this list surfaces as a
// field_mismatch backend error.
const (
	fieldDriverName = "Name"
	fieldFromCity   = "Starting city"
	fieldFromArea   = "Starting area"
	fieldToCity     = "Destination city"
	fieldToArea     = "Destination area"
	fieldDate       = "Date"
	fieldTime       = "Time"
	fieldSeats      = "Seats"
	fieldPrice      = "Price"
	fieldWhatsApp   = "WhatsApp"
	fieldCarType    = "Car type"
	fieldNote       = "Note"
	fieldCancelled  = "Cancelled"
)

type rideRepo struct {
	cfg    *models.Config
	tab    *tabular.Client
	client *offline.Client
}

// NewRideRepo creates the ride repository over the tabular backend. Reads go
// through the offline client for cache fallback; writes for deferral.
func NewRideRepo(cfg *models.Config, tab *tabular.Client, client *offline.Client) rides.RideRepo {
	return &rideRepo{
		cfg:    cfg,
		tab:    tab,
		client: client,
	}
}

// CreateRide publishes a ride. While offline the create is queued and the
// returned ride carries no backend id.
func (r *rideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, bool, error) {
	body := map[string]interface{}{"fields": rideToFields(ride)}

	var rec tabular.Record
	res, err := r.client.Write(ctx, "ride:create", http.MethodPost, r.tab.TablePath(r.cfg.Backend.RidesTable), body, &rec)
	if err != nil {
		return nil, false, err
	}
	if res.Offline {
		queued := *ride
		return &queued, true, nil
	}

	created := recordToRide(rec)
	return created, false, nil
}

// FindExactRoute is the first matching tier: a backend-side filter for
// byte-exact equality on both city fields, restricted to non-cancelled
// rides, newest first.
func (r *rideRepo) FindExactRoute(ctx context.Context, fromCity, toCity string) ([]*models.Ride, bool, error) {
	formula := fmt.Sprintf("AND({%s}='%s',{%s}='%s',NOT({%s}))",
		fieldFromCity, escapeFormula(fromCity),
		fieldToCity, escapeFormula(toCity),
		fieldCancelled)

	q := url.Values{}
	q.Set("filterByFormula", formula)

	cacheKey := "cache:rides:route:" + fromCity + ":" + toCity
	records, fromCache, err := r.listRecords(ctx, r.cfg.Backend.RidesTable, q, cacheKey)
	if err != nil {
		return nil, false, err
	}
	return recordsToRides(records), fromCache, nil
}

// ListActive returns all non-cancelled rides, newest first. The bool reports
// whether the result was served from the stale local cache.
func (r *rideRepo) ListActive(ctx context.Context) ([]*models.Ride, bool, error) {
	q := url.Values{}
	q.Set("filterByFormula", fmt.Sprintf("NOT({%s})", fieldCancelled))

	records, fromCache, err := r.listRecords(ctx, r.cfg.Backend.RidesTable, q, "cache:rides:active")
	if err != nil {
		return nil, false, err
	}
	return recordsToRides(records), fromCache, nil
}

// GetRide fetches a single ride by its backend record id
func (r *rideRepo) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	var rec tabular.Record
	_, err := r.client.Fetch(ctx, "cache:ride:"+rideID, &rec, func(ctx context.Context) error {
		return r.tab.DoJSON(ctx, http.MethodGet, r.tab.RecordPath(r.cfg.Backend.RidesTable, rideID), nil, nil, &rec)
	})
	if err != nil {
		if isNotFound(err) {
			return nil, rides.ErrRideNotFound
		}
		return nil, err
	}
	ride := recordToRide(rec)
	return ride, nil
}

// CancelRide soft-deletes a ride by setting its Cancelled flag. The record
// itself is never removed.
func (r *rideRepo) CancelRide(ctx context.Context, rideID string) (bool, error) {
	body := map[string]interface{}{"fields": map[string]interface{}{fieldCancelled: true}}

	res, err := r.client.Write(ctx, "ride:cancel", http.MethodPatch, r.tab.RecordPath(r.cfg.Backend.RidesTable, rideID), body, nil)
	if err != nil {
		if isNotFound(err) {
			return false, rides.ErrRideNotFound
		}
		return false, err
	}
	return res.Offline, nil
}

// Sync drains the offline queue against the backend
func (r *rideRepo) Sync(ctx context.Context) (offline.DrainResult, error) {
	return r.client.Drain(ctx)
}

func (r *rideRepo) listRecords(ctx context.Context, table string, q url.Values, cacheKey string) ([]tabular.Record, bool, error) {
	var records []tabular.Record
	fromCache, err := r.client.Fetch(ctx, cacheKey, &records, func(ctx context.Context) error {
		recs, err := r.tab.List(ctx, table, q)
		if err != nil {
			return err
		}
		records = recs
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	// newest first; the backend reports creation time per record
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedTime.After(records[j].CreatedTime)
	})
	return records, fromCache, nil
}

func rideToFields(ride *models.Ride) map[string]interface{} {
	fields := map[string]interface{}{
		fieldDriverName: ride.DriverName,
		fieldFromCity:   ride.FromCity,
		fieldToCity:     ride.ToCity,
		fieldDate:       ride.Date,
		fieldTime:       ride.Time,
		fieldSeats:      ride.Seats,
		fieldPrice:      ride.Price,
		fieldWhatsApp:   ride.WhatsApp,
	}
	if ride.FromArea != "" {
		fields[fieldFromArea] = ride.FromArea
	}
	if ride.ToArea != "" {
		fields[fieldToArea] = ride.ToArea
	}
	if ride.CarType != "" {
		fields[fieldCarType] = ride.CarType
	}
	if ride.Note != "" {
		fields[fieldNote] = ride.Note
	}
	return fields
}

func recordToRide(rec tabular.Record) *models.Ride {
	return &models.Ride{
		ID:         rec.ID,
		DriverName: rec.FieldString(fieldDriverName),
		FromCity:   rec.FieldString(fieldFromCity),
		FromArea:   rec.FieldString(fieldFromArea),
		ToCity:     rec.FieldString(fieldToCity),
		ToArea:     rec.FieldString(fieldToArea),
		Date:       rec.FieldString(fieldDate),
		Time:       rec.FieldString(fieldTime),
		Seats:      rec.FieldInt(fieldSeats),
		Price:      rec.FieldNumericString(fieldPrice),
		WhatsApp:   rec.FieldString(fieldWhatsApp),
		CarType:    rec.FieldString(fieldCarType),
		Note:       rec.FieldString(fieldNote),
		Cancelled:  rec.FieldBool(fieldCancelled),
		CreatedAt:  rec.CreatedTime,
	}
}

func recordsToRides(records []tabular.Record) []*models.Ride {
	out := make([]*models.Ride, 0, len(records))
	for _, rec := range records {
		out = append(out, recordToRide(rec))
	}
	return out
}

// escapeFormula escapes single quotes inside filterByFormula string literals
func escapeFormula(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

func isNotFound(err error) bool {
	var berr *tabular.Error
	if errors.As(err, &berr) {
		return berr.StatusCode == http.StatusNotFound
	}
	return false
}
