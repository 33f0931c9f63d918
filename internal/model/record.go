package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field is one named value of a Record.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered set of fields. It marshals to a JSON object whose keys
// keep insertion order; numeric-looking values become JSON numbers.
type Record struct {
	Fields []Field
}

// Set appends key or overwrites its value in place.
func (r *Record) Set(key, value string) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Keys returns field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.Fields) }

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(jsonValue(f.Value))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonValue(v string) []byte {
	unsigned := strings.TrimPrefix(v, "-")
	leadingZero := len(unsigned) > 1 && unsigned[0] == '0' && unsigned[1] != '.'
	if _, err := strconv.ParseFloat(v, 64); err == nil && IsDigits(trimNumber(v)) && !leadingZero {
		return []byte(v)
	}
	b, _ := json.Marshal(v)
	return b
}

// trimNumber strips one leading minus and one decimal point so IsDigits can
// reject forms like "1e5", "NaN" or "Inf" that ParseFloat accepts.
func trimNumber(v string) string {
	if len(v) > 0 && v[0] == '-' {
		v = v[1:]
	}
	for i := 0; i < len(v); i++ {
		if v[i] == '.' {
			if i == 0 || i == len(v)-1 {
				return ""
			}
			return v[:i] + v[i+1:]
		}
	}
	return v
}

// RecordFromRow projects the given columns of a row into a Record, skipping
// columns the row lacks.
func RecordFromRow(row Row, cols []string) Record {
	var r Record
	for _, c := range cols {
		if v, ok := row.Get(c); ok {
			r.Set(c, v)
		}
	}
	return r
}
