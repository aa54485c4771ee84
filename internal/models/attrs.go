package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Attrs holds the schemaless part of an equipment or maintenance record.
// Stored as a JSONB column.
type Attrs map[string]interface{}

// Value implements driver.Valuer for JSONB storage.
func (a Attrs) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (a *Attrs) Scan(src interface{}) error {
	if src == nil {
		*a = Attrs{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for Attrs")
	}

	return json.Unmarshal(data, a)
}
