package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringArray stores an ordered string list as a JSON column (image URLs).
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := normalizeJSONBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Spec is a single ordered specification entry (e.g. "Quvvat" -> "2000 W").
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SpecList stores ordered product specifications as a JSON column. A map
// would lose the display order, so it is a slice of pairs.
type SpecList []Spec

// Value implements driver.Valuer.
func (l SpecList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *SpecList) Scan(value interface{}) error {
	if value == nil {
		*l = SpecList{}
		return nil
	}
	bytes, ok := normalizeJSONBytes(value)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

func normalizeJSONBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
