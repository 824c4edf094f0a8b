package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawseela/tawseela/internal/pkg/kvstore"
	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/internal/pkg/offline"
	"github.com/tawseela/tawseela/internal/pkg/tabular"
	"github.com/tawseela/tawseela/services/rides"
)

func testConfig(baseURL string) *models.Config {
	return &models.Config{
		Backend: models.BackendConfig{
			BaseURL:       baseURL,
			APIKey:        "test-key",
			BaseID:        "appTEST",
			RidesTable:    "Published Rides",
			RequestsTable: "Ride Requests",
		},
	}
}

func newRepo(cfg *models.Config, online bool) (rides.RideRepo, kvstore.Store) {
	kv := kvstore.NewMemory()
	tab := tabular.NewClient(cfg.Backend)
	client := offline.NewClient(tab, offline.StaticProbe(online), offline.NewQueue(kv), kv)
	return NewRideRepo(cfg, tab, client), kv
}

func TestCreateRide_Online(t *testing.T) {
	var got map[string]map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "rec1",
			"createdTime": time.Now().Format(time.RFC3339),
			"fields":      got["fields"],
		})
	}))
	defer server.Close()

	repo, _ := newRepo(testConfig(server.URL), true)

	ride := &models.Ride{
		DriverName: "Ali",
		FromCity:   "بغداد",
		FromArea:   "الكرادة",
		ToCity:     "البصرة",
		Date:       "2026-09-05",
		Time:       "08:00",
		Seats:      3,
		Price:      "15000",
		WhatsApp:   "9647801234567",
	}

	created, queued, err := repo.CreateRide(context.Background(), ride)
	require.NoError(t, err)
	assert.False(t, queued)
	assert.Equal(t, "rec1", created.ID)

	// backend column names, not struct field names
	fields := got["fields"]
	assert.Equal(t, "Ali", fields["Name"])
	assert.Equal(t, "بغداد", fields["Starting city"])
	assert.Equal(t, "الكرادة", fields["Starting area"])
	assert.Equal(t, "البصرة", fields["Destination city"])
	assert.Equal(t, "9647801234567", fields["WhatsApp"])
	assert.NotContains(t, fields, "Destination area", "empty optional fields are omitted")
	assert.NotContains(t, fields, "Note")
}

func TestCreateRide_OfflineQueued(t *testing.T) {
	repo, kv := newRepo(testConfig("http://backend.invalid"), false)

	ride := &models.Ride{DriverName: "Ali", FromCity: "بغداد", ToCity: "البصرة"}
	created, queued, err := repo.CreateRide(context.Background(), ride)

	require.NoError(t, err)
	assert.True(t, queued)
	assert.Empty(t, created.ID, "no backend id while offline")

	queue := offline.NewQueue(kv)
	entries, err := queue.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ride:create", entries[0].ActionType)
	assert.Equal(t, http.MethodPost, entries[0].Method)
}

func TestFindExactRoute_FilterFormula(t *testing.T) {
	var formula string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		formula = r.URL.Query().Get("filterByFormula")
		json.NewEncoder(w).Encode(map[string]interface{}{"records": []map[string]interface{}{}})
	}))
	defer server.Close()

	repo, _ := newRepo(testConfig(server.URL), true)

	result, fromCache, err := repo.FindExactRoute(context.Background(), "بغداد", "الناصرية")
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Empty(t, result)
	assert.Equal(t, "AND({Starting city}='بغداد',{Destination city}='الناصرية',NOT({Cancelled}))", formula)
}

func TestFindExactRoute_QuoteEscaped(t *testing.T) {
	var formula string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		formula = r.URL.Query().Get("filterByFormula")
		json.NewEncoder(w).Encode(map[string]interface{}{"records": []map[string]interface{}{}})
	}))
	defer server.Close()

	repo, _ := newRepo(testConfig(server.URL), true)

	_, _, err := repo.FindExactRoute(context.Background(), "it's", "there")
	require.NoError(t, err)
	assert.Contains(t, formula, `{Starting city}='it\'s'`)
}

func TestListActive_SortedNewestFirst(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"records": []map[string]interface{}{
				{"id": "recOld", "createdTime": "2026-08-01T10:00:00Z", "fields": map[string]interface{}{}},
				{"id": "recNew", "createdTime": "2026-08-20T10:00:00Z", "fields": map[string]interface{}{}},
			},
		})
	}))
	defer server.Close()

	repo, _ := newRepo(testConfig(server.URL), true)

	result, _, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "recNew", result[0].ID)
	assert.Equal(t, "recOld", result[1].ID)
}

func TestListActive_OfflineServedFromCache(t *testing.T) {
	cfg := testConfig("http://backend.invalid")
	repo, kv := newRepo(cfg, false)

	cached := `[{"id":"rec1","createdTime":"2026-08-20T10:00:00Z","fields":{"Name":"Ali"}}]`
	require.NoError(t, kv.Set(context.Background(), "cache:rides:active", cached))

	result, fromCache, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, result, 1)
	assert.Equal(t, "Ali", result[0].DriverName)
}

func TestGetRide_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"NOT_FOUND","message":"record not found"}}`))
	}))
	defer server.Close()

	repo, _ := newRepo(testConfig(server.URL), true)

	_, err := repo.GetRide(context.Background(), "recGone")
	assert.ErrorIs(t, err, rides.ErrRideNotFound)
}

func TestCancelRide_PatchesCancelledFlag(t *testing.T) {
	var method, path string
	var got map[string]map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.EscapedPath()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "rec1"})
	}))
	defer server.Close()

	repo, _ := newRepo(testConfig(server.URL), true)

	queued, err := repo.CancelRide(context.Background(), "rec1")
	require.NoError(t, err)
	assert.False(t, queued)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/appTEST/Published%20Rides/rec1", path)
	assert.Equal(t, true, got["fields"]["Cancelled"])
}

func TestCreateRequest_UsesSeatsNeededColumn(t *testing.T) {
	var got map[string]map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appTEST/Ride%20Requests", r.URL.EscapedPath())
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "recR1",
			"fields": got["fields"],
		})
	}))
	defer server.Close()

	repo, _ := newRepo(testConfig(server.URL), true)

	req := &models.RideRequest{
		PassengerName: "Zainab",
		FromCity:      "النجف",
		ToCity:        "كربلاء",
		Date:          "2026-09-05",
		Seats:         2,
		WhatsApp:      "9647809876543",
	}

	created, queued, err := repo.CreateRequest(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, queued)
	assert.Equal(t, "recR1", created.ID)
	assert.Equal(t, float64(2), got["fields"]["Seats needed"])
}

func TestSync_ReplaysOfflineWrites(t *testing.T) {
	received := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received++
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "rec1"})
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	kv := kvstore.NewMemory()
	tab := tabular.NewClient(cfg.Backend)

	// go offline, queue two writes
	offlineClient := offline.NewClient(tab, offline.StaticProbe(false), offline.NewQueue(kv), kv)
	offlineRepo := NewRideRepo(cfg, tab, offlineClient)

	_, queued, err := offlineRepo.CreateRide(context.Background(), &models.Ride{DriverName: "Ali"})
	require.NoError(t, err)
	require.True(t, queued)
	queued, err = offlineRepo.CancelRide(context.Background(), "rec9")
	require.NoError(t, err)
	require.True(t, queued)

	// back online, same store: drain replays both
	onlineClient := offline.NewClient(tab, offline.StaticProbe(true), offline.NewQueue(kv), kv)
	onlineRepo := NewRideRepo(cfg, tab, onlineClient)

	result, err := onlineRepo.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, offline.DrainResult{Processed: 2, Succeeded: 2, Failed: 0}, result)
	assert.Equal(t, 2, received)
}
