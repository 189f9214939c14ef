package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nitij-msarii/rag-api-usertask/pkg/models"
)

func TestHistoryHandler_List(t *testing.T) {
	created := time.Date(2024, 3, 14, 16, 0, 0, 0, time.UTC)
	mock := &mockTranslationService{
		records: []*models.TranslationRecord{
			{
				ID:        uuid.New(),
				Query:     "show me everything",
				SQLQuery:  "SELECT 1",
				Response:  "Found 1 records matching your query.",
				CreatedAt: created,
			},
			{
				ID:        uuid.New(),
				Query:     "what is the status",
				SQLQuery:  "SELECT 2",
				Response:  "Tasks and Activities:",
				CreatedAt: created.Add(-time.Hour),
			},
		},
	}
	handler := NewHistoryHandler(mock, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if mock.gotLimit != 20 {
		t.Errorf("expected limit 20, got %d", mock.gotLimit)
	}

	var response HistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 2 {
		t.Errorf("expected count 2, got %d", response.Count)
	}
	if len(response.History) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(response.History))
	}
	if response.History[0].Query != "show me everything" {
		t.Errorf("unexpected first entry: %+v", response.History[0])
	}
	if response.History[0].CreatedAt != created.Format(time.RFC3339) {
		t.Errorf("unexpected created_at: %q", response.History[0].CreatedAt)
	}
}

func TestHistoryHandler_Empty(t *testing.T) {
	handler := NewHistoryHandler(&mockTranslationService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response HistoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 0 {
		t.Errorf("expected count 0, got %d", response.Count)
	}
}

func TestHistoryHandler_Error(t *testing.T) {
	handler := NewHistoryHandler(&mockTranslationService{err: errAny}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}
