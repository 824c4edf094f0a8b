package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tawseela/tawseela/internal/pkg/device"
	"github.com/tawseela/tawseela/internal/pkg/kvstore"
	"github.com/tawseela/tawseela/internal/pkg/logger"
	"github.com/tawseela/tawseela/internal/pkg/models"
	"github.com/tawseela/tawseela/services/history"
)

// tokenPrefix keys one history token per created ride or request
const tokenPrefix = "ride:"

// historyUC implements history.HistoryUC on top of the key-value store.
// Tokens let a device recognize records it created without any account
// system; they expire after the configured retention window.
type historyUC struct {
	kv        kvstore.Store
	retention time.Duration
	now       func() time.Time
}

// NewHistoryUC creates the device-history use case
func NewHistoryUC(cfg *models.Config, kv kvstore.Store) history.HistoryUC {
	days := cfg.History.RetentionDays
	if days <= 0 {
		days = 7
	}
	return &historyUC{
		kv:        kv,
		retention: time.Duration(days) * 24 * time.Hour,
		now:       time.Now,
	}
}

// DeviceID resolves the soft device identity for a fingerprint
func (uc *historyUC) DeviceID(fp device.Fingerprint) string {
	return device.DeriveID(fp)
}

// RecordCreation writes a history token for a freshly created ride or
// request, overwriting any prior token with the same ride id. Failures are
// logged and swallowed: history is a convenience, not a ledger.
func (uc *historyUC) RecordCreation(ctx context.Context, fp device.Fingerprint, whatsapp string, action models.HistoryAction, rideID string, details interface{}) {
	if rideID == "" {
		return
	}

	var snapshot json.RawMessage
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			snapshot = data
		}
	}

	token := models.DeviceHistoryToken{
		DeviceID:  device.DeriveID(fp),
		WhatsApp:  whatsapp,
		Action:    action,
		RideID:    rideID,
		Details:   snapshot,
		CreatedAt: uc.now().UnixMilli(),
	}

	data, err := json.Marshal(token)
	if err != nil {
		logger.Warn("Failed to encode history token", logger.Err(err))
		return
	}
	if err := uc.kv.Set(ctx, tokenPrefix+rideID, string(data)); err != nil {
		logger.Warn("Failed to store history token",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}
}

// ListDeviceHistory returns the valid tokens belonging to the presented
// device. Unparseable entries are garbage and removed on sight; expired or
// foreign-device tokens are skipped. No ordering guarantee.
func (uc *historyUC) ListDeviceHistory(ctx context.Context, fp device.Fingerprint) []models.DeviceHistoryToken {
	deviceID := device.DeriveID(fp)

	keys, err := uc.kv.Keys(ctx, tokenPrefix)
	if err != nil {
		logger.Warn("Failed to enumerate history tokens", logger.Err(err))
		return nil
	}

	tokens := make([]models.DeviceHistoryToken, 0, len(keys))
	for _, key := range keys {
		token, ok := uc.loadToken(ctx, key)
		if !ok {
			continue
		}
		if token.DeviceID != deviceID || uc.expired(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// PurgeExpired removes every token past the retention window along with any
// unparseable entry. Runs at startup so stale history never accumulates
// across sessions. Returns the number of removed entries.
func (uc *historyUC) PurgeExpired(ctx context.Context) int {
	keys, err := uc.kv.Keys(ctx, tokenPrefix)
	if err != nil {
		logger.Warn("Failed to enumerate history tokens", logger.Err(err))
		return 0
	}

	removed := 0
	for _, key := range keys {
		raw, ok, err := uc.kv.Get(ctx, key)
		if err != nil || !ok {
			continue
		}

		var token models.DeviceHistoryToken
		if err := json.Unmarshal([]byte(raw), &token); err != nil || uc.expired(token) {
			if rerr := uc.kv.Remove(ctx, key); rerr == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		logger.Info("Purged expired device history", logger.Int("removed", removed))
	}
	return removed
}

// IsOwnedByThisDevice reports whether a valid token for rideID exists and
// belongs to the presented device
func (uc *historyUC) IsOwnedByThisDevice(ctx context.Context, fp device.Fingerprint, rideID string) bool {
	if rideID == "" {
		return false
	}
	token, ok := uc.loadToken(ctx, tokenPrefix+rideID)
	if !ok {
		return false
	}
	return token.DeviceID == device.DeriveID(fp) && !uc.expired(token)
}

// loadToken reads and parses one token. A value that fails to parse is
// corrupt local state: it is deleted and reported as absent.
func (uc *historyUC) loadToken(ctx context.Context, key string) (models.DeviceHistoryToken, bool) {
	raw, ok, err := uc.kv.Get(ctx, key)
	if err != nil || !ok {
		return models.DeviceHistoryToken{}, false
	}

	var token models.DeviceHistoryToken
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		_ = uc.kv.Remove(ctx, key)
		return models.DeviceHistoryToken{}, false
	}
	return token, true
}

func (uc *historyUC) expired(token models.DeviceHistoryToken) bool {
	age := uc.now().Sub(time.UnixMilli(token.CreatedAt))
	return age > uc.retention
}
