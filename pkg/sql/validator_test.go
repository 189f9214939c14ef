package sql

import (
	"errors"
	"testing"
)

func TestValidateSingleStatement_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "simple select",
			input: "SELECT 1",
		},
		{
			name:  "select with trailing semicolon",
			input: "SELECT 1;",
		},
		{
			name:  "trailing semicolon and whitespace",
			input: "SELECT 1;  ",
		},
		{
			name:  "semicolon inside single quoted string",
			input: "SELECT * FROM cells WHERE cell_data = 'a;b'",
		},
		{
			name:  "semicolon inside double quoted identifier",
			input: `SELECT * FROM "table;name"`,
		},
		{
			name:  "SQL standard escaped single quote",
			input: "SELECT * FROM users WHERE name = 'O''Brien'",
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSingleStatement(tt.input); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateSingleStatement_MultipleStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "two selects",
			input: "SELECT 1; SELECT 2",
		},
		{
			name:  "select then drop",
			input: "SELECT * FROM cells; DROP TABLE cells",
		},
		{
			name:  "trailing statement after semicolon and whitespace",
			input: "SELECT 1;   DELETE FROM cells;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleStatement(tt.input)
			if !errors.Is(err, ErrMultipleStatements) {
				t.Errorf("expected ErrMultipleStatements, got %v", err)
			}
		})
	}
}
