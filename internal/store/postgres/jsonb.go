package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB maps a Go value onto a jsonb column.
type JSONB[T any] struct {
	Data T
}

func (j *JSONB[T]) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, &j.Data)
	case string:
		return json.Unmarshal([]byte(v), &j.Data)
	case nil:
		var zero T
		j.Data = zero
		return nil
	default:
		return fmt.Errorf("JSONB.Scan: expected []byte, got %T", src)
	}
}

func (j JSONB[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.Data)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}
