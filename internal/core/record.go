package core

import (
	"bytes"
	"encoding/json"
)

// Record is one normalized row of a dataset: an ordered set of
// header-derived fields with string values.
//
// Records are immutable once built. The zero value is an empty record.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a record from parallel key/value slices.
// Missing values resolve to "". A repeated key keeps the position of its
// first occurrence and the value of its last.
func NewRecord(keys, values []string) Record {
	r := Record{
		keys:   make([]string, 0, len(keys)),
		values: make(map[string]string, len(keys)),
	}
	for i, k := range keys {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		if _, seen := r.values[k]; !seen {
			r.keys = append(r.keys, k)
		}
		r.values[k] = v
	}
	return r
}

// RecordOf builds a record from alternating key, value arguments.
// A trailing key without a value gets "".
func RecordOf(pairs ...string) Record {
	keys := make([]string, 0, (len(pairs)+1)/2)
	values := make([]string, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		keys = append(keys, pairs[i])
		if i+1 < len(pairs) {
			values = append(values, pairs[i+1])
		}
	}
	return NewRecord(keys, values)
}

// Get returns the value for field and whether the field exists.
func (r Record) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Value returns the value for field, or "" when absent.
func (r Record) Value(field string) string {
	return r.values[field]
}

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// MarshalJSON encodes the record as a JSON object whose keys keep
// insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
