package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRow_MarshalPreservesColumnOrder(t *testing.T) {
	row := ResultRow{
		Columns: []string{"b", "a", "c"},
		Values:  map[string]any{"a": 1, "b": 2, "c": nil},
	}

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1,"c":null}`, string(out))
}

func TestResultRow_String(t *testing.T) {
	row := ResultRow{
		Columns: []string{"name", "count", "gone"},
		Values:  map[string]any{"name": "alpha", "count": int64(3), "gone": nil},
	}

	assert.Equal(t, "alpha", row.String("name"))
	assert.Equal(t, "3", row.String("count"))
	assert.Equal(t, "", row.String("gone"))
	assert.Equal(t, "", row.String("absent"))
}

func TestFetchResult_MarshalStates(t *testing.T) {
	t.Run("error marker", func(t *testing.T) {
		out, err := json.Marshal(FetchResult{Err: "boom"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"boom"}`, string(out))
	})

	t.Run("nil rows marshal as empty array", func(t *testing.T) {
		out, err := json.Marshal(FetchResult{})
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(out))
	})

	t.Run("rows marshal as array", func(t *testing.T) {
		result := FetchResult{Rows: []ResultRow{
			{Columns: []string{"id"}, Values: map[string]any{"id": 1}},
		}}
		out, err := json.Marshal(result)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, string(out))
	})
}
