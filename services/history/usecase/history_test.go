package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawseela/tawseela/internal/pkg/device"
	"github.com/tawseela/tawseela/internal/pkg/kvstore"
	"github.com/tawseela/tawseela/internal/pkg/models"
)

func testFingerprint(ua string) device.Fingerprint {
	return device.Fingerprint{
		UserAgent:    ua,
		ScreenWidth:  393,
		ScreenHeight: 851,
		Language:     "ar-IQ",
		Timezone:     "Asia/Baghdad",
	}
}

func newTestUC(kv kvstore.Store, now func() time.Time) *historyUC {
	cfg := &models.Config{History: models.HistoryConfig{RetentionDays: 7}}
	uc := NewHistoryUC(cfg, kv).(*historyUC)
	if now != nil {
		uc.now = now
	}
	return uc
}

func TestRecordCreation_RoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC(kvstore.NewMemory(), nil)
	fp := testFingerprint("android")

	ride := &models.Ride{ID: "rec1", FromCity: "بغداد", ToCity: "البصرة"}
	uc.RecordCreation(ctx, fp, "9647801234567", models.HistoryActionPublished, "rec1", ride)

	tokens := uc.ListDeviceHistory(ctx, fp)
	require.Len(t, tokens, 1)
	assert.Equal(t, "rec1", tokens[0].RideID)
	assert.Equal(t, models.HistoryActionPublished, tokens[0].Action)
	assert.Equal(t, "9647801234567", tokens[0].WhatsApp)
	assert.Equal(t, uc.DeviceID(fp), tokens[0].DeviceID)
	assert.NotEmpty(t, tokens[0].Details)
}

func TestRecordCreation_EmptyRideIDIgnored(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	uc := newTestUC(kv, nil)

	uc.RecordCreation(ctx, testFingerprint("android"), "9647801234567", models.HistoryActionPublished, "", nil)

	keys, err := kv.Keys(ctx, "ride:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestListDeviceHistory_CrossDeviceIsolation(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC(kvstore.NewMemory(), nil)

	phone := testFingerprint("android")
	laptop := testFingerprint("linux desktop")

	uc.RecordCreation(ctx, phone, "9647801234567", models.HistoryActionPublished, "rec1", nil)
	uc.RecordCreation(ctx, laptop, "9647809876543", models.HistoryActionRequested, "rec2", nil)

	phoneTokens := uc.ListDeviceHistory(ctx, phone)
	require.Len(t, phoneTokens, 1)
	assert.Equal(t, "rec1", phoneTokens[0].RideID)

	laptopTokens := uc.ListDeviceHistory(ctx, laptop)
	require.Len(t, laptopTokens, 1)
	assert.Equal(t, "rec2", laptopTokens[0].RideID)

	assert.Empty(t, uc.ListDeviceHistory(ctx, testFingerprint("unknown")))
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	fp := testFingerprint("android")

	base := time.Now()
	current := base
	uc := newTestUC(kvstore.NewMemory(), func() time.Time { return current })

	uc.RecordCreation(ctx, fp, "9647801234567", models.HistoryActionPublished, "rec1", nil)

	// just inside the retention window
	current = base.Add(7 * 24 * time.Hour)
	assert.Len(t, uc.ListDeviceHistory(ctx, fp), 1)
	assert.True(t, uc.IsOwnedByThisDevice(ctx, fp, "rec1"))

	// one second past it
	current = base.Add(7*24*time.Hour + time.Second)
	assert.Empty(t, uc.ListDeviceHistory(ctx, fp))
	assert.False(t, uc.IsOwnedByThisDevice(ctx, fp, "rec1"))
}

func TestPurgeExpired(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	fp := testFingerprint("android")

	base := time.Now()
	current := base
	uc := newTestUC(kv, func() time.Time { return current })

	uc.RecordCreation(ctx, fp, "9647801234567", models.HistoryActionPublished, "old", nil)

	current = base.Add(6 * 24 * time.Hour)
	uc.RecordCreation(ctx, fp, "9647801234567", models.HistoryActionPublished, "fresh", nil)

	// corrupt entry sharing the prefix
	require.NoError(t, kv.Set(ctx, "ride:junk", "{not json"))

	current = base.Add(8 * 24 * time.Hour)
	removed := uc.PurgeExpired(ctx)
	assert.Equal(t, 2, removed, "expired token and corrupt entry removed")

	tokens := uc.ListDeviceHistory(ctx, fp)
	require.Len(t, tokens, 1)
	assert.Equal(t, "fresh", tokens[0].RideID)
}

func TestIsOwnedByThisDevice(t *testing.T) {
	ctx := context.Background()
	uc := newTestUC(kvstore.NewMemory(), nil)

	owner := testFingerprint("android")
	stranger := testFingerprint("other phone")

	uc.RecordCreation(ctx, owner, "9647801234567", models.HistoryActionPublished, "rec1", nil)

	assert.True(t, uc.IsOwnedByThisDevice(ctx, owner, "rec1"))
	assert.False(t, uc.IsOwnedByThisDevice(ctx, stranger, "rec1"))
	assert.False(t, uc.IsOwnedByThisDevice(ctx, owner, "rec2"))
	assert.False(t, uc.IsOwnedByThisDevice(ctx, owner, ""))
}

func TestCorruptTokenDeletedOnRead(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	uc := newTestUC(kv, nil)
	fp := testFingerprint("android")

	require.NoError(t, kv.Set(ctx, "ride:rec1", "not json at all"))

	assert.False(t, uc.IsOwnedByThisDevice(ctx, fp, "rec1"))

	_, ok, err := kv.Get(ctx, "ride:rec1")
	require.NoError(t, err)
	assert.False(t, ok, "corrupt token is deleted on sight")
}
