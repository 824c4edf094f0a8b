// Package device derives a soft, non-cryptographic device identity from
// browser environment attributes. The id scopes the "my rides on this device"
// view; it is a heuristic, never an authentication credential.
package device

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// delimiter joins the fingerprint tuple before encoding. It never occurs in
// the numeric fields, so the encoding stays reversible.
const delimiter = "|"

// Fingerprint is the environment tuple a client presents to identify itself
type Fingerprint struct {
	UserAgent    string `json:"user_agent"`
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	Language     string `json:"language"`
	Timezone     string `json:"timezone"`
}

// IsZero reports whether no attribute of the fingerprint is set
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// DeriveID computes the device id for a fingerprint. Deterministic: the same
// environment tuple always yields the same id, so the id is stable for as
// long as the client's environment is.
func DeriveID(f Fingerprint) string {
	joined := strings.Join([]string{
		f.UserAgent,
		fmt.Sprintf("%d", f.ScreenWidth),
		fmt.Sprintf("%d", f.ScreenHeight),
		f.Language,
		f.Timezone,
	}, delimiter)
	return base64.StdEncoding.EncodeToString([]byte(joined))
}

// DecodeID reverses DeriveID. The encoding is an identifier, not a secret,
// so round-tripping is allowed and used for debugging.
func DecodeID(id string) (Fingerprint, error) {
	raw, err := base64.StdEncoding.DecodeString(id)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("malformed device id: %w", err)
	}
	parts := strings.Split(string(raw), delimiter)
	if len(parts) != 5 {
		return Fingerprint{}, fmt.Errorf("malformed device id: expected 5 attributes, got %d", len(parts))
	}
	var f Fingerprint
	f.UserAgent = parts[0]
	fmt.Sscanf(parts[1], "%d", &f.ScreenWidth)
	fmt.Sscanf(parts[2], "%d", &f.ScreenHeight)
	f.Language = parts[3]
	f.Timezone = parts[4]
	return f, nil
}
