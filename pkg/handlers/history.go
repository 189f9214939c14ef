package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nitij-msarii/rag-api-usertask/pkg/repositories"
	"github.com/nitij-msarii/rag-api-usertask/pkg/services"
)

// HistoryEntryResponse is one audit record in the history listing.
type HistoryEntryResponse struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	SQLQuery  string `json:"sql_query"`
	Response  string `json:"response"`
	CreatedAt string `json:"created_at"`
}

// HistoryResponse wraps the listing with its count.
type HistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
	Count   int                    `json:"count"`
}

// HistoryHandler serves the translation history listing.
type HistoryHandler struct {
	service services.TranslationService
	logger  *zap.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(service services.TranslationService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{service: service, logger: logger}
}

// RegisterRoutes registers the history handler's routes on the given mux.
func (h *HistoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/history", h.List)
}

// List handles GET /api/history. Returns the 20 most recent records,
// newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context(), repositories.DefaultHistoryLimit)
	if err != nil {
		h.logger.Error("Failed to list history", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to list history"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	entries := make([]HistoryEntryResponse, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntryResponse{
			ID:        record.ID.String(),
			Query:     record.Query,
			SQLQuery:  record.SQLQuery,
			Response:  record.Response,
			CreatedAt: record.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := WriteJSON(w, http.StatusOK, HistoryResponse{History: entries, Count: len(entries)}); err != nil {
		h.logger.Error("Failed to encode history response", zap.Error(err))
	}
}
