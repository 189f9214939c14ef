package nlq

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nitij-msarii/rag-api-usertask/pkg/models"
	"github.com/nitij-msarii/rag-api-usertask/pkg/schema"
)

// NoDataMessage is returned verbatim for an empty result set.
const NoDataMessage = "No data found for the specified query."

const (
	listingRowLimit = 10
	sampleRowLimit  = 3
)

// Intent is the two-way classification of a query text that selects the
// narrative branch. It is a transient decision, never persisted.
type Intent int

const (
	// IntentSummary aggregates counts, date range, and name sets.
	IntentSummary Intent = iota
	// IntentListing enumerates individual records.
	IntentListing
)

// ClassifyIntent returns IntentListing when the lowercased text contains
// "status" or "what", IntentSummary otherwise.
func ClassifyIntent(queryText string) Intent {
	lower := strings.ToLower(queryText)
	if strings.Contains(lower, "status") || strings.Contains(lower, "what") {
		return IntentListing
	}
	return IntentSummary
}

// FormatResponse renders the human-readable narrative for a result set.
// It is pure: the same query text, rows, and profile always produce the
// same string.
func FormatResponse(queryText string, result models.FetchResult, profile *schema.Profile) string {
	if result.IsError() {
		return "Error executing query: " + result.Err
	}
	if len(result.Rows) == 0 {
		return NoDataMessage
	}
	if ClassifyIntent(queryText) == IntentListing {
		return formatListing(result.Rows, profile)
	}
	return formatSummary(result.Rows, profile)
}

// formatListing enumerates up to ten records as multi-line blocks. Only
// the descriptive fields the profile exposes are emitted; absent fields
// are omitted, never fabricated.
func formatListing(rows []models.ResultRow, profile *schema.Profile) string {
	parts := []string{profile.ListingHeader()}

	limit := len(rows)
	if limit > listingRowLimit {
		limit = listingRowLimit
	}

	for i := 0; i < limit; i++ {
		row := rows[i]
		parts = append(parts,
			fmt.Sprintf("\nRecord %d:", i+1),
			"  - Date: "+valueOrDefault(row, "cell_date", "Unknown date"),
			"  - Data: "+valueOrDefault(row, "cell_data", "No data"),
			"  - Column Type: "+valueOrDefault(row, "column_type", "Unknown type"),
		)
		if col := profile.Narrative.Sheet; col != "" {
			parts = append(parts, "  - Sheet: "+valueOrDefault(row, col, "Unknown sheet"))
		}
		if col := profile.Narrative.Workspace; col != "" {
			parts = append(parts, "  - Workspace: "+valueOrDefault(row, col, "Unknown workspace"))
		}
		if col := profile.Narrative.User; col != "" {
			parts = append(parts, "  - User: "+valueOrDefault(row, col, "Unknown user"))
		}
		if col := profile.Narrative.Status; col != "" {
			parts = append(parts, "  - Status: "+valueOrDefault(row, col, "Unknown status"))
		}
		parts = append(parts, "")
	}

	return strings.Join(parts, "\n")
}

// formatSummary reports the record count, the lexical min/max date range,
// the deduplicated descriptive-name sets, and up to three sample lines.
func formatSummary(rows []models.ResultRow, profile *schema.Profile) string {
	parts := []string{fmt.Sprintf("Found %d records matching your query.", len(rows))}

	var dates []string
	for _, row := range rows {
		if d := row.String("cell_date"); d != "" {
			dates = append(dates, d)
		}
	}
	if len(dates) > 0 {
		oldest, latest := dates[0], dates[0]
		// Lexical comparison is date order for canonical YYYY-MM-DD strings.
		for _, d := range dates[1:] {
			if d < oldest {
				oldest = d
			}
			if d > latest {
				latest = d
			}
		}
		parts = append(parts, fmt.Sprintf("Date range: %s to %s", oldest, latest))
	}

	if col := profile.Narrative.Workspace; col != "" {
		if names := collectNames(rows, col); len(names) > 0 {
			parts = append(parts, "Workspaces: "+strings.Join(names, ", "))
		}
	}
	if col := profile.Narrative.Sheet; col != "" {
		if names := collectNames(rows, col); len(names) > 0 {
			parts = append(parts, "Sheets: "+strings.Join(names, ", "))
		}
	}
	if profile.Narrative.Workspace == "" && profile.Narrative.Sheet == "" {
		if col := profile.Narrative.User; col != "" {
			if names := collectNames(rows, col); len(names) > 0 {
				parts = append(parts, "Users: "+strings.Join(names, ", "))
			}
		}
	}

	parts = append(parts, "\nSample records:")
	limit := len(rows)
	if limit > sampleRowLimit {
		limit = sampleRowLimit
	}
	bracketCol, bracketDefault := sampleBracketField(profile)
	for i := 0; i < limit; i++ {
		row := rows[i]
		parts = append(parts, fmt.Sprintf("  %d. %s [%s]: %s",
			i+1,
			valueOrDefault(row, "cell_date", "No date"),
			valueOrDefault(row, bracketCol, bracketDefault),
			valueOrDefault(row, "cell_data", "No data")))
	}

	return strings.Join(parts, "\n")
}

// sampleBracketField picks the classification field for sample lines:
// sheet name when the profile has one, otherwise status, otherwise user.
func sampleBracketField(profile *schema.Profile) (column, fallback string) {
	switch {
	case profile.Narrative.Sheet != "":
		return profile.Narrative.Sheet, "Unknown sheet"
	case profile.Narrative.Status != "":
		return profile.Narrative.Status, "Unknown status"
	default:
		return profile.Narrative.User, "Unknown user"
	}
}

// collectNames gathers the sorted set of non-empty values in a column.
func collectNames(rows []models.ResultRow, column string) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		if name := row.String(column); name != "" {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func valueOrDefault(row models.ResultRow, column, fallback string) string {
	if s := row.String(column); s != "" {
		return s
	}
	return fallback
}
