// Package timex provides a time.Duration wrapper that can be unmarshalled
// from JSON either as a string like "15s" or as an integer nanosecond count.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration wraps time.Duration for JSON-friendly configuration values.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string ("15s", "2m30s") or a
// number interpreted as nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// MarshalJSON renders the duration in its string form ("15s").
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
