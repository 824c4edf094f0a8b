// Package offline defers backend writes made while connectivity is down and
// replays them once it returns. The queue lives in the shared key-value store
// as an ordered JSON list; multiple processes draining concurrently are not
// coordinated (single-writer assumption).
package offline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tawseela/tawseela/internal/pkg/kvstore"
	"github.com/tawseela/tawseela/internal/pkg/logger"
	"github.com/tawseela/tawseela/internal/pkg/models"
)

// QueueKey is the fixed key the action list is stored under
const QueueKey = "offline:actions"

// ProcessFunc replays a single queued action
type ProcessFunc func(ctx context.Context, action models.OfflineAction) error

// DrainResult summarizes one drain pass
type DrainResult struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"` // failed entries stay queued for the next pass
}

// Queue is the persistent offline action queue
type Queue struct {
	kv  kvstore.Store
	key string
	now func() time.Time
}

// NewQueue creates a queue on top of the given store
func NewQueue(kv kvstore.Store) *Queue {
	return &Queue{kv: kv, key: QueueKey, now: time.Now}
}

// Enqueue appends a write action to the queue and returns the stored entry
func (q *Queue) Enqueue(ctx context.Context, actionType, method, path string, body json.RawMessage) (models.OfflineAction, error) {
	action := models.OfflineAction{
		ID:         uuid.New().String(),
		ActionType: actionType,
		Method:     method,
		Path:       path,
		Body:       body,
		EnqueuedAt: q.now().UnixMilli(),
	}

	entries, err := q.Entries(ctx)
	if err != nil {
		return models.OfflineAction{}, err
	}
	entries = append(entries, action)

	if err := q.save(ctx, entries); err != nil {
		return models.OfflineAction{}, err
	}

	logger.Info("Queued offline action",
		logger.String("action_type", actionType),
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("queue_len", len(entries)))

	return action, nil
}

// Entries returns the queued actions in enqueue order. An unparseable stored
// list is corrupt local state: it is discarded and treated as empty.
func (q *Queue) Entries(ctx context.Context) ([]models.OfflineAction, error) {
	raw, ok, err := q.kv.Get(ctx, q.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var entries []models.OfflineAction
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Warn("Discarding corrupt offline queue", logger.Err(err))
		_ = q.kv.Remove(ctx, q.key)
		return nil, nil
	}
	return entries, nil
}

// Len returns the number of queued actions
func (q *Queue) Len(ctx context.Context) (int, error) {
	entries, err := q.Entries(ctx)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Drain replays every queued action through process, in enqueue order, one
// attempt each. Actions that succeed are removed; actions that fail are
// logged and re-queued in their original order for a later pass, so a
// backend outage during drain does not lose writes.
func (q *Queue) Drain(ctx context.Context, process ProcessFunc) (DrainResult, error) {
	entries, err := q.Entries(ctx)
	if err != nil {
		return DrainResult{}, err
	}
	if len(entries) == 0 {
		return DrainResult{}, nil
	}

	var failed []models.OfflineAction
	result := DrainResult{Processed: len(entries)}

	for _, action := range entries {
		if err := process(ctx, action); err != nil {
			logger.Error("Offline action replay failed",
				logger.String("action_id", action.ID),
				logger.String("action_type", action.ActionType),
				logger.Err(err))
			failed = append(failed, action)
			continue
		}
		result.Succeeded++
	}
	result.Failed = len(failed)

	if len(failed) == 0 {
		if err := q.kv.Remove(ctx, q.key); err != nil {
			return result, err
		}
		return result, nil
	}

	if err := q.save(ctx, failed); err != nil {
		return result, err
	}
	return result, nil
}

func (q *Queue) save(ctx context.Context, entries []models.OfflineAction) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return q.kv.Set(ctx, q.key, string(data))
}
