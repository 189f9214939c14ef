package models

import (
	"time"

	"github.com/google/uuid"
)

// TranslationRecord is the persisted audit record of one translation
// request: the original text, the generated SQL, the narrative, and the
// rows that were fetched. Created exactly once per request and immutable
// thereafter.
type TranslationRecord struct {
	ID          uuid.UUID   `json:"id"`
	Query       string      `json:"query"`
	SQLQuery    string      `json:"sql_query"`
	Response    string      `json:"response"`
	DataFetched FetchResult `json:"data_fetched"`
	CreatedAt   time.Time   `json:"created_at"`
}
