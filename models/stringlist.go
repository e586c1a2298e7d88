package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a jsonb array.
// A NULL column scans to an empty (non-nil) list so API responses
// always render "[]" instead of null.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as "[]",
// never as SQL NULL, so round-trips preserve the empty-list case.
func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		sl = StringList{}
	}
	b, err := json.Marshal([]string(sl))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb/text columns.
func (sl *StringList) Scan(src interface{}) error {
	if src == nil {
		*sl = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}

	if len(raw) == 0 || string(raw) == "null" {
		*sl = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("StringList.Scan: parse %q: %w", string(raw), err)
	}
	if out == nil {
		out = []string{}
	}
	*sl = StringList(out)
	return nil
}

// MarshalJSON keeps nil lists rendering as [].
func (sl StringList) MarshalJSON() ([]byte, error) {
	if sl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(sl))
}

// GormDataType tells GORM to create a jsonb column.
func (StringList) GormDataType() string {
	return "jsonb"
}

// Contains reports whether s is a member of the list.
func (sl StringList) Contains(s string) bool {
	for _, v := range sl {
		if v == s {
			return true
		}
	}
	return false
}
