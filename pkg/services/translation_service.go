package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nitij-msarii/rag-api-usertask/pkg/apperrors"
	"github.com/nitij-msarii/rag-api-usertask/pkg/logging"
	"github.com/nitij-msarii/rag-api-usertask/pkg/models"
	"github.com/nitij-msarii/rag-api-usertask/pkg/nlq"
	"github.com/nitij-msarii/rag-api-usertask/pkg/observability"
	"github.com/nitij-msarii/rag-api-usertask/pkg/repositories"
	"github.com/nitij-msarii/rag-api-usertask/pkg/schema"
	sqlcheck "github.com/nitij-msarii/rag-api-usertask/pkg/sql"
)

// TranslationResult is the outcome of one completed translation request.
type TranslationResult struct {
	Query       string
	SQLQuery    string
	Response    string
	DataFetched models.FetchResult
	Timestamp   time.Time
}

// TranslationService runs the full translation sequence for a query text:
// extract predicates, assemble SQL, execute, normalize, format, and record
// the attempt to history.
type TranslationService interface {
	// Translate answers a free-text query. An execution failure is not an
	// error here; it surfaces as the error marker inside the result.
	Translate(ctx context.Context, queryText string) (*TranslationResult, error)

	// History returns the most recent translation records, newest first.
	History(ctx context.Context, limit int) ([]*models.TranslationRecord, error)
}

type translationService struct {
	profile  *schema.Profile
	executor Executor
	history  repositories.HistoryRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewTranslationService creates a TranslationService bound to one schema
// profile.
func NewTranslationService(profile *schema.Profile, executor Executor, history repositories.HistoryRepository, logger *zap.Logger) TranslationService {
	return &translationService{
		profile:  profile,
		executor: executor,
		history:  history,
		logger:   logger.Named("translation-service"),
		now:      time.Now,
	}
}

var _ TranslationService = (*translationService)(nil)

func (s *translationService) Translate(ctx context.Context, queryText string) (*TranslationResult, error) {
	if strings.TrimSpace(queryText) == "" {
		return nil, apperrors.ErrEmptyQuery
	}

	predicates := nlq.Extract(queryText, s.now())

	// Extracted tokens are screened before being bound. The username
	// pattern only admits word characters, which the screen never flags;
	// a detection can only come from a widened pattern and drops the
	// user predicate rather than reaching the database.
	if predicates.User != nil && predicates.User.Kind == nlq.UserMatchUsername {
		if check := sqlcheck.CheckParameterForInjection("username", predicates.User.Username); check != nil {
			s.logger.Warn("Dropping user predicate flagged by injection screen",
				zap.String("fingerprint", check.Fingerprint))
			predicates.User = nil
		}
	}

	sqlText, args := nlq.Assemble(predicates, s.profile)
	if err := sqlcheck.ValidateSingleStatement(sqlText); err != nil {
		return nil, fmt.Errorf("assembled statement rejected: %w", err)
	}

	var result models.FetchResult
	columns, raw, err := s.executor.Query(ctx, sqlText, args...)
	if err != nil {
		result = nlq.ErrorResult(errors.New(logging.SanitizeError(err)))
		observability.TranslationsTotal.WithLabelValues("execution_error").Inc()
		s.logger.Warn("Query execution failed",
			zap.String("sql", logging.SanitizeQuery(sqlText)),
			zap.Error(err))
	} else {
		result = models.FetchResult{Rows: nlq.NormalizeRows(columns, raw)}
		observability.TranslationsTotal.WithLabelValues("ok").Inc()
	}

	response := nlq.FormatResponse(queryText, result, s.profile)
	completedAt := s.now()

	record := &models.TranslationRecord{
		Query:     queryText,
		SQLQuery:  sqlText,
		Response:  response,
		CreatedAt: completedAt,
	}
	if !result.IsError() {
		record.DataFetched = result
	}

	// History is a side effect of a completed request; its failure must
	// not invalidate the already-computed response.
	if err := s.history.Create(ctx, record); err != nil {
		s.logger.Warn("Failed to record translation history", zap.Error(err))
	}

	return &TranslationResult{
		Query:       queryText,
		SQLQuery:    sqlText,
		Response:    response,
		DataFetched: result,
		Timestamp:   completedAt,
	}, nil
}

func (s *translationService) History(ctx context.Context, limit int) ([]*models.TranslationRecord, error) {
	records, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}
