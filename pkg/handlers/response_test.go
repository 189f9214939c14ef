package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestErrorResponse_UniformPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	err := ErrorResponse(rec, http.StatusBadRequest, "validation_error", "Query parameter is required")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON content type, got %q", got)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "validation_error" {
		t.Errorf("expected error code %q, got %q", "validation_error", body["error"])
	}
	if body["message"] != "Query parameter is required" {
		t.Errorf("expected message %q, got %q", "Query parameter is required", body["message"])
	}
	if len(body) != 2 {
		t.Errorf("expected exactly error and message keys, got %v", body)
	}
}

func TestWriteJSON_SetsStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteJSON(rec, http.StatusOK, map[string]int{"count": 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON content type, got %q", got)
	}
	if got := rec.Body.String(); got != "{\"count\":3}\n" {
		t.Errorf("unexpected body: %q", got)
	}
}
