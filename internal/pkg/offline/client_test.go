package offline

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawseela/tawseela/internal/pkg/kvstore"
)

// fakeBackend records calls and returns a scripted response
type fakeBackend struct {
	calls []string
	fail  error
	out   interface{}
}

func (f *fakeBackend) DoJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	f.calls = append(f.calls, method+" "+path)
	if f.fail != nil {
		return f.fail
	}
	if f.out != nil && out != nil {
		data, _ := json.Marshal(f.out)
		return json.Unmarshal(data, out)
	}
	return nil
}

func newTestClient(backend *fakeBackend, online bool) (*Client, kvstore.Store) {
	kv := kvstore.NewMemory()
	return NewClient(backend, StaticProbe(online), NewQueue(kv), kv), kv
}

func TestClient_Fetch_Online(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	client, kv := newTestClient(backend, true)

	var out map[string]string
	fromCache, err := client.Fetch(ctx, "cache:test", &out, func(ctx context.Context) error {
		out = map[string]string{"name": "Ali"}
		return nil
	})

	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "Ali", out["name"])

	// result was cached for later offline use
	raw, ok, err := kv.Get(ctx, "cache:test")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Ali"}`, raw)
}

func TestClient_Fetch_OnlineFetchFails_ServesStaleCache(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	client, kv := newTestClient(backend, true)

	require.NoError(t, kv.Set(ctx, "cache:test", `{"name":"Zainab"}`))

	var out map[string]string
	fromCache, err := client.Fetch(ctx, "cache:test", &out, func(ctx context.Context) error {
		return errors.New("backend down")
	})

	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, "Zainab", out["name"])
}

func TestClient_Fetch_OnlineFetchFails_NoCache(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	client, _ := newTestClient(backend, true)

	fetchErr := errors.New("backend down")
	var out map[string]string
	_, err := client.Fetch(ctx, "cache:test", &out, func(ctx context.Context) error {
		return fetchErr
	})

	assert.ErrorIs(t, err, fetchErr)
}

func TestClient_Fetch_Offline(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	client, kv := newTestClient(backend, false)

	var out map[string]string
	_, err := client.Fetch(ctx, "cache:test", &out, func(ctx context.Context) error {
		t.Fatal("fetch must not run while offline")
		return nil
	})
	assert.ErrorIs(t, err, ErrOffline)

	// with a cache entry the read succeeds from cache
	require.NoError(t, kv.Set(ctx, "cache:test", `{"name":"Ali"}`))
	fromCache, err := client.Fetch(ctx, "cache:test", &out, func(ctx context.Context) error {
		t.Fatal("fetch must not run while offline")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, "Ali", out["name"])
}

func TestClient_Fetch_CorruptCacheRemoved(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	client, kv := newTestClient(backend, false)

	require.NoError(t, kv.Set(ctx, "cache:test", "{broken"))

	var out map[string]string
	_, err := client.Fetch(ctx, "cache:test", &out, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrOffline)

	_, ok, _ := kv.Get(ctx, "cache:test")
	assert.False(t, ok, "corrupt cache entry is dropped")
}

func TestClient_Write_Online(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{out: map[string]string{"id": "rec1"}}
	client, _ := newTestClient(backend, true)

	var out map[string]string
	result, err := client.Write(ctx, "ride:create", "POST", "/app/Rides", map[string]string{"Name": "Ali"}, &out)

	require.NoError(t, err)
	assert.False(t, result.Offline)
	assert.Nil(t, result.Action)
	assert.Equal(t, "rec1", out["id"])
	assert.Equal(t, []string{"POST /app/Rides"}, backend.calls)
}

func TestClient_Write_OnlineBackendError(t *testing.T) {
	ctx := context.Background()
	backendErr := errors.New("schema mismatch")
	backend := &fakeBackend{fail: backendErr}
	client, _ := newTestClient(backend, true)

	_, err := client.Write(ctx, "ride:create", "POST", "/app/Rides", nil, nil)
	assert.ErrorIs(t, err, backendErr)
}

func TestClient_Write_OfflineQueues(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	client, _ := newTestClient(backend, false)

	result, err := client.Write(ctx, "ride:create", "POST", "/app/Rides", map[string]string{"Name": "Ali"}, nil)

	require.NoError(t, err)
	assert.True(t, result.Offline)
	require.NotNil(t, result.Action)
	assert.Equal(t, "ride:create", result.Action.ActionType)
	assert.Empty(t, backend.calls, "no backend call while offline")

	n, err := client.Queue().Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClient_Drain_ReplaysQueuedWrites(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{}
	client, _ := newTestClient(backend, false)

	_, err := client.Write(ctx, "ride:create", "POST", "/app/Rides", map[string]string{"Name": "Ali"}, nil)
	require.NoError(t, err)
	_, err = client.Write(ctx, "ride:cancel", "PATCH", "/app/Rides/rec1", map[string]bool{"Cancelled": true}, nil)
	require.NoError(t, err)

	result, err := client.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, DrainResult{Processed: 2, Succeeded: 2, Failed: 0}, result)
	assert.Equal(t, []string{"POST /app/Rides", "PATCH /app/Rides/rec1"}, backend.calls)

	n, _ := client.Queue().Len(ctx)
	assert.Zero(t, n)
}
