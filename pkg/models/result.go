package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResultRow is a single result record keyed by column name. Key order
// follows the SELECT list of the generating query, and JSON output
// preserves that order.
type ResultRow struct {
	Columns []string
	Values  map[string]any
}

// Get returns the value for a column and whether the column is present.
func (r ResultRow) Get(column string) (any, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// String returns the value for a column rendered as a string, or empty
// when the column is absent or nil.
func (r ResultRow) String(column string) string {
	v, ok := r.Values[column]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// MarshalJSON writes the row as a JSON object with keys in column order.
func (r ResultRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal column name %q: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.Values[col])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value for column %q: %w", col, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FetchResult is either a normalized row set or an execution error marker.
// The two states are mutually exclusive; an empty row set is not an error.
type FetchResult struct {
	Rows []ResultRow
	Err  string
}

// IsError reports whether the result carries the error marker.
func (f FetchResult) IsError() bool {
	return f.Err != ""
}

// MarshalJSON writes a row array, or {"error": message} for the error marker.
func (f FetchResult) MarshalJSON() ([]byte, error) {
	if f.Err != "" {
		return json.Marshal(map[string]string{"error": f.Err})
	}
	if f.Rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.Rows)
}
