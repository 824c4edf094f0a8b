package models

import "encoding/json"

// HistoryAction tells whether a device published a ride or a ride request
type HistoryAction string

const (
	HistoryActionPublished HistoryAction = "published"
	HistoryActionRequested HistoryAction = "requested"
)

// DeviceHistoryToken marks a ride or request as created from a particular
// device. Tokens live in the key-value store under "ride:{rideId}" and are
// valid only while the device id matches and the token is younger than the
// configured retention window.
type DeviceHistoryToken struct {
	DeviceID  string          `json:"device_id"`
	WhatsApp  string          `json:"whatsapp_number"`
	Action    HistoryAction   `json:"action"`
	RideID    string          `json:"ride_id"`
	Details   json.RawMessage `json:"details,omitempty"` // snapshot of the record at creation time
	CreatedAt int64           `json:"created_at_epoch_ms"`
}
