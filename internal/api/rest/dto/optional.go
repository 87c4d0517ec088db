package dto

import "encoding/json"

// Optional is a tri-state JSON field: absent, explicit null, or a value.
// An omitted field never reaches UnmarshalJSON, so Set stays false; an
// explicit null marks Null. This is how "clear this field" is told apart
// from "field not supplied" on partial updates.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
