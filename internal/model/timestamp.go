package model

import (
	"encoding/json"
	"strings"
	"time"
)

// timestampLayouts are tried in order. The backend emits naive ISO-8601 for created_at
// and RFC 3339 for detectedAt.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a backend-formatted point in time. The original text is kept and
// re-emitted verbatim; Time holds the parsed value, or the zero time when the text
// is empty or in an unknown layout. Naive times are read as UTC.
type Timestamp struct {
	time.Time
	raw string
}

// NewTimestamp returns a Timestamp rendered as RFC 3339.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, raw: t.Format(time.RFC3339Nano)}
}

// ParseTimestamp parses s leniently; it never fails.
func ParseTimestamp(s string) Timestamp {
	ts := Timestamp{raw: s}
	s = strings.TrimSpace(s)
	if s == "" {
		return ts
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			break
		}
	}
	return ts
}

// Raw returns the text received from the backend.
func (t Timestamp) Raw() string { return t.raw }

// MarshalJSON emits the original text, or RFC 3339 for timestamps built in code.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.raw == "" && !t.Time.IsZero() {
		return json.Marshal(t.Time.Format(time.RFC3339Nano))
	}
	return json.Marshal(t.raw)
}

// UnmarshalJSON accepts a JSON string or null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTimestamp(s)
	return nil
}
