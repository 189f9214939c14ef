package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nitij-msarii/rag-api-usertask/pkg/database"
	"github.com/nitij-msarii/rag-api-usertask/pkg/models"
)

// DefaultHistoryLimit is the number of records the history listing
// returns when no limit is given.
const DefaultHistoryLimit = 20

// HistoryRepository provides data access for translation history.
type HistoryRepository interface {
	Create(ctx context.Context, record *models.TranslationRecord) error
	ListRecent(ctx context.Context, limit int) ([]*models.TranslationRecord, error)
}

type historyRepository struct {
	db *database.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *database.DB) HistoryRepository {
	return &historyRepository{db: db}
}

var _ HistoryRepository = (*historyRepository)(nil)

func (r *historyRepository) Create(ctx context.Context, record *models.TranslationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	dataJSON, err := json.Marshal(record.DataFetched)
	if err != nil {
		return fmt.Errorf("failed to marshal data_fetched: %w", err)
	}

	query := `
		INSERT INTO query_history (id, query, sql_query, response, data_fetched, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.Exec(ctx, query,
		record.ID,
		record.Query,
		record.SQLQuery,
		record.Response,
		dataJSON,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create query history record: %w", err)
	}

	return nil
}

// ListRecent returns the newest records first. The fetched-rows payload is
// not loaded; the listing surface only exposes text and timestamps.
func (r *historyRepository) ListRecent(ctx context.Context, limit int) ([]*models.TranslationRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultHistoryLimit
	}

	query := `
		SELECT id, query, sql_query, response, created_at
		FROM query_history
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list query history records: %w", err)
	}
	defer rows.Close()

	var records []*models.TranslationRecord
	for rows.Next() {
		var record models.TranslationRecord
		if err := rows.Scan(
			&record.ID,
			&record.Query,
			&record.SQLQuery,
			&record.Response,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan query history record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating query history records: %w", err)
	}

	return records, nil
}
