package tabular

import (
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
)

// Category groups backend failures into the small set of user-facing buckets
// the UI layer knows how to present.
type Category string

const (
	// CategoryAuth covers invalid or missing API keys and permission errors
	CategoryAuth Category = "auth"
	// CategoryFieldMismatch covers schema drift between this code and the
	// backend table (unknown field names, invalid field values)
	CategoryFieldMismatch Category = "field_mismatch"
	// CategoryGeneric covers everything else
	CategoryGeneric Category = "generic"
)

// Error is a non-2xx response from the tabular backend
type Error struct {
	StatusCode int
	Type       string
	Message    string
	Category   Category
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d %s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("backend error (%d %s)", e.StatusCode, e.Type)
}

// errorBody matches the backend's {"error": {...}} envelope. Some endpoints
// return the error as a bare string instead of an object.
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

type errorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func decodeError(resp *nethttp.Response) error {
	e := &Error{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 {
		var body errorBody
		if json.Unmarshal(data, &body) == nil && len(body.Error) > 0 {
			var detail errorDetail
			if json.Unmarshal(body.Error, &detail) == nil {
				e.Type = detail.Type
				e.Message = detail.Message
			} else {
				// bare string form
				var s string
				if json.Unmarshal(body.Error, &s) == nil {
					e.Type = s
				}
			}
		}
	}

	e.Category = categorize(e.StatusCode, e.Type)
	return e
}

func categorize(status int, errType string) Category {
	switch {
	case status == nethttp.StatusUnauthorized || status == nethttp.StatusForbidden:
		return CategoryAuth
	case errType == "UNKNOWN_FIELD_NAME" || errType == "INVALID_VALUE_FOR_COLUMN":
		return CategoryFieldMismatch
	default:
		return CategoryGeneric
	}
}
