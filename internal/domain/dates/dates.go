// Package dates normalizes the loosely formatted date values the admin UI sends
// into UTC points in time.
package dates

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

// Parse accepts date-only, month-only and full timestamp forms. The result is UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Format renders t the way every date leaves the API.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Time is a JSON date that decodes any layout Parse understands.
// Null and the empty string decode to an unset value.
type Time struct {
	time.Time
	set bool
}

func (t Time) IsSet() bool { return t.set }

// Ptr returns nil when the value was omitted or null.
func (t Time) Ptr() *time.Time {
	if !t.set {
		return nil
	}
	v := t.Time
	return &v
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: expected a string", ErrInvalidDate)
	}
	if strings.TrimSpace(s) == "" {
		*t = Time{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = Time{Time: parsed, set: true}
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if !t.set {
		return []byte("null"), nil
	}
	return json.Marshal(Format(t.Time))
}

// Of wraps an already normalized value.
func Of(v time.Time) Time {
	return Time{Time: v.UTC(), set: true}
}
