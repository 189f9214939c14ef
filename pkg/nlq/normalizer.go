package nlq

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/nitij-msarii/rag-api-usertask/pkg/models"
)

// timestampLayout is the full rendering for temporal values that carry a
// time-of-day component.
const timestampLayout = "2006-01-02 15:04:05"

// NormalizeRows converts raw driver values into transport-safe scalars:
// pure dates become canonical YYYY-MM-DD strings, timestamps their full
// string form, and fixed-point decimals are widened to float64. Every row
// keeps the identical key set in SELECT-list order.
func NormalizeRows(columns []string, raw [][]any) []models.ResultRow {
	rows := make([]models.ResultRow, 0, len(raw))
	for _, rawRow := range raw {
		values := make(map[string]any, len(columns))
		for i, col := range columns {
			var v any
			if i < len(rawRow) {
				v = rawRow[i]
			}
			values[col] = normalizeValue(v)
		}
		rows = append(rows, models.ResultRow{Columns: columns, Values: values})
	}
	return rows
}

// ErrorResult wraps an execution failure as the error marker, which is
// distinguishable from an empty result set.
func ErrorResult(err error) models.FetchResult {
	return models.FetchResult{Err: err.Error()}
}

func normalizeValue(v any) any {
	switch v := v.(type) {
	case time.Time:
		if isPureDate(v) {
			return v.Format(DateLayout)
		}
		return v.Format(timestampLayout)
	case pgtype.Numeric:
		f, err := v.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case decimal.Decimal:
		return v.InexactFloat64()
	case []byte:
		return string(v)
	default:
		return v
	}
}

func isPureDate(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}
