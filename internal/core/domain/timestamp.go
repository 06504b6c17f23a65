package domain

import (
	"encoding/json"
	"time"
)

// isoDateFormat is the calendar-date layout used throughout the ledger.
const isoDateFormat = "2006-01-02"

// Timestamp is a closed two-variant representation of the polymorphic
// "last updated" value attached to payment records. Upstream sources emit
// either a structured time value carrying epoch seconds or a plain ISO
// string; exactly one of the two fields is set.
type Timestamp struct {
	Seconds *int64
	ISO     string
}

// TimestampFromTime builds the epoch-seconds variant from a concrete time.
func TimestampFromTime(t time.Time) *Timestamp {
	secs := t.Unix()
	return &Timestamp{Seconds: &secs}
}

// DateString converts the timestamp into a calendar date string
// (YYYY-MM-DD). Malformed or absent values degrade to the supplied
// reference time instead of failing; a broken date must never block a
// statement from rendering.
func (t *Timestamp) DateString(now time.Time) string {
	if t == nil {
		return now.UTC().Format(isoDateFormat)
	}
	if t.Seconds != nil {
		return time.Unix(*t.Seconds, 0).UTC().Format(isoDateFormat)
	}
	if t.ISO != "" {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, isoDateFormat} {
			if parsed, err := time.Parse(layout, t.ISO); err == nil {
				return parsed.UTC().Format(isoDateFormat)
			}
		}
	}
	return now.UTC().Format(isoDateFormat)
}

// Time resolves the timestamp into a concrete instant, falling back to
// the supplied reference time like DateString does.
func (t *Timestamp) Time(now time.Time) time.Time {
	if t == nil {
		return now
	}
	if t.Seconds != nil {
		return time.Unix(*t.Seconds, 0).UTC()
	}
	if t.ISO != "" {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, isoDateFormat} {
			if parsed, err := time.Parse(layout, t.ISO); err == nil {
				return parsed.UTC()
			}
		}
	}
	return now
}

// UnmarshalJSON accepts either a JSON number (epoch seconds) or a string
// (ISO timestamp), matching the two source shapes.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var secs int64
	if err := json.Unmarshal(data, &secs); err == nil {
		t.Seconds = &secs
		t.ISO = ""
		return nil
	}
	var iso string
	if err := json.Unmarshal(data, &iso); err != nil {
		return err
	}
	t.Seconds = nil
	t.ISO = iso
	return nil
}

// MarshalJSON emits the variant that is set.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Seconds != nil {
		return json.Marshal(*t.Seconds)
	}
	return json.Marshal(t.ISO)
}
