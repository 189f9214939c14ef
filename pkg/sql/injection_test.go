package sql

import "testing"

func TestCheckParameterForInjection(t *testing.T) {
	tests := []struct {
		name            string
		paramName       string
		value           any
		expectInjection bool
	}{
		{
			name:            "clean numeric string",
			paramName:       "user_id",
			value:           "12345",
			expectInjection: false,
		},
		{
			name:            "clean username token",
			paramName:       "username",
			value:           "john_doe",
			expectInjection: false,
		},
		{
			name:            "clean date string",
			paramName:       "start_date",
			value:           "2024-01-15",
			expectInjection: false,
		},
		{
			name:            "keyword inside a word-character token",
			paramName:       "username",
			value:           "robert_union_select",
			expectInjection: false,
		},
		{
			name:            "digits and letters only",
			paramName:       "username",
			value:           "select1",
			expectInjection: false,
		},
		{
			name:            "classic injection attempt",
			paramName:       "username",
			value:           "'; DROP TABLE query_history--",
			expectInjection: true,
		},
		{
			name:            "boolean tautology",
			paramName:       "username",
			value:           "' OR '1'='1",
			expectInjection: true,
		},
		{
			name:            "non-string value is never checked",
			paramName:       "user_id",
			value:           int64(42),
			expectInjection: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckParameterForInjection(tt.paramName, tt.value)
			if tt.expectInjection {
				if result == nil {
					t.Fatal("expected injection to be detected")
				}
				if !result.IsSQLi {
					t.Error("expected IsSQLi to be true")
				}
				if result.ParamName != tt.paramName {
					t.Errorf("expected param name %q, got %q", tt.paramName, result.ParamName)
				}
				if result.Fingerprint == "" {
					t.Error("expected a non-empty fingerprint")
				}
			} else if result != nil {
				t.Errorf("expected no detection, got %+v", result)
			}
		})
	}
}
