package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONTime wraps time.Time so we can control both
// JSON un/marshaling and SQL driver encoding.
type JSONTime time.Time

// UnmarshalJSON accepts RFC3339 ("2026-01-20T00:00:00Z") as well as the
// shorter timezone-less forms mobile clients tend to send.
func (jt *JSONTime) UnmarshalJSON(b []byte) error {
	// strip quotes
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}

	const layoutNoZone = "2006-01-02T15:04:05.999999"
	if t, err := time.Parse(layoutNoZone, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}

	const layoutNoFrac = "2006-01-02T15:04:05"
	t, err := time.Parse(layoutNoFrac, s)
	if err != nil {
		return fmt.Errorf("JSONTime.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*jt = JSONTime(t)
	return nil
}

// MarshalJSON always emits full RFC3339.
func (jt JSONTime) MarshalJSON() ([]byte, error) {
	t := time.Time(jt)
	return json.Marshal(t.Format(time.RFC3339))
}

// Time returns the wrapped time.Time.
func (jt JSONTime) Time() time.Time {
	return time.Time(jt)
}

// Value implements driver.Valuer so GORM/pgx can
// turn JSONTime into a SQL TIMESTAMPTZ parameter.
func (jt JSONTime) Value() (driver.Value, error) {
	return time.Time(jt), nil
}

// Scan implements sql.Scanner so GORM can read
// TIMESTAMPTZ back into JSONTime when querying.
func (jt *JSONTime) Scan(src interface{}) error {
	if src == nil {
		*jt = JSONTime(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*jt = JSONTime(v)
		return nil
	case []byte:
		t, err := time.Parse(time.RFC3339Nano, string(v))
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: parse %q: %w", string(v), err)
		}
		*jt = JSONTime(t)
		return nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: parse %q: %w", v, err)
		}
		*jt = JSONTime(t)
		return nil
	default:
		return fmt.Errorf("JSONTime.Scan: unsupported type %T", src)
	}
}
