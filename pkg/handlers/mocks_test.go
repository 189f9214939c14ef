package handlers

import (
	"context"
	"errors"

	"github.com/nitij-msarii/rag-api-usertask/pkg/models"
	"github.com/nitij-msarii/rag-api-usertask/pkg/services"
)

var errAny = errors.New("boom")

// mockTranslationService is a configurable mock for handler tests.
type mockTranslationService struct {
	result  *services.TranslationResult
	records []*models.TranslationRecord
	err     error

	gotQuery string
	gotLimit int
}

func (m *mockTranslationService) Translate(ctx context.Context, queryText string) (*services.TranslationResult, error) {
	m.gotQuery = queryText
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockTranslationService) History(ctx context.Context, limit int) ([]*models.TranslationRecord, error) {
	m.gotLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

var _ services.TranslationService = (*mockTranslationService)(nil)
