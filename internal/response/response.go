// Package response builds the success side of the API envelope.
//
// Success responses look like
//
//	{ "success": true, "data": <payload>, "message": "...", ...extra }
//
// where data and message are optional. Failures are errs.HTTPError.
package response

import "encoding/json"

// Success is the success envelope.
//
// Extra carries top-level fields some endpoints add next to data
// (e.g. "status" and "timestamp" on the health check). Extra never
// overrides the success, data or message keys.
type Success struct {
	Data    any
	Message string
	Extra   map[string]any
}

// OK wraps a payload.
func OK(data any) Success {
	return Success{Data: data}
}

// WithMessage wraps a message-only result.
func WithMessage(message string) Success {
	return Success{Message: message}
}

// MarshalJSON flattens the envelope into a single object.
func (s Success) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+3)
	for k, v := range s.Extra {
		out[k] = v
	}

	out["success"] = true
	if s.Data != nil {
		out["data"] = s.Data
	} else {
		delete(out, "data")
	}
	if s.Message != "" {
		out["message"] = s.Message
	} else {
		delete(out, "message")
	}

	return json.Marshal(out)
}
