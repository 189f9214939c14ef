package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nitij-msarii/rag-api-usertask/pkg/apperrors"
	"github.com/nitij-msarii/rag-api-usertask/pkg/models"
	"github.com/nitij-msarii/rag-api-usertask/pkg/services"
)

// QueryRequest carries the free-text question to translate.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the full translation payload: the original text, the
// generated SQL (with placeholders, for audit and debugging), the
// narrative, and the fetched rows or error marker.
type QueryResponse struct {
	Query       string             `json:"query"`
	SQLQuery    string             `json:"sql_query"`
	Response    string             `json:"response"`
	DataFetched models.FetchResult `json:"data_fetched"`
	Timestamp   string             `json:"timestamp"`
}

// QueryHandler handles translation requests.
type QueryHandler struct {
	service services.TranslationService
	logger  *zap.Logger
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(service services.TranslationService, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{service: service, logger: logger}
}

// RegisterRoutes registers the query handler's routes on the given mux.
func (h *QueryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/query", h.Translate)
}

// Translate handles POST /api/query.
func (h *QueryHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	result, err := h.service.Translate(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyQuery) {
			if err := ErrorResponse(w, http.StatusBadRequest, "validation_error", "Query parameter is required"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Translation failed", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := QueryResponse{
		Query:       result.Query,
		SQLQuery:    result.SQLQuery,
		Response:    result.Response,
		DataFetched: result.DataFetched,
		Timestamp:   result.Timestamp.Format(time.RFC3339),
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode query response", zap.Error(err))
	}
}
