package models

import "encoding/json"

// OfflineAction is a buffered write operation recorded while the backend was
// unreachable. Replay order equals enqueue order; there is no coalescing of
// duplicate actions.
type OfflineAction struct {
	ID         string          `json:"id"`
	ActionType string          `json:"action_type"`
	Method     string          `json:"method"`
	Path       string          `json:"path"`
	Body       json.RawMessage `json:"body,omitempty"`
	EnqueuedAt int64           `json:"enqueued_at_epoch_ms"`
}
