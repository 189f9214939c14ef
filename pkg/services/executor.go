package services

import (
	"context"
	"fmt"

	"github.com/nitij-msarii/rag-api-usertask/pkg/database"
)

// Executor runs a single assembled statement against the store and
// returns the column names and raw row values, or a failure. Failure is
// an expected outcome handled as data by the caller, not a fatal fault.
type Executor interface {
	Query(ctx context.Context, sqlText string, args ...any) (columns []string, rows [][]any, err error)
}

type pgxExecutor struct {
	db *database.DB
}

// NewExecutor creates an Executor backed by the shared connection pool.
func NewExecutor(db *database.DB) Executor {
	return &pgxExecutor{db: db}
}

var _ Executor = (*pgxExecutor)(nil)

func (e *pgxExecutor) Query(ctx context.Context, sqlText string, args ...any) ([]string, [][]any, error) {
	rows, err := e.db.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name
	}

	var out [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row values: %w", err)
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return columns, out, nil
}
