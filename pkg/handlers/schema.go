package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nitij-msarii/rag-api-usertask/pkg/schema"
)

// SchemaInfoResponse describes the active schema profile for client
// introspection.
type SchemaInfoResponse struct {
	Profile     string                             `json:"profile"`
	Schema      map[string]schema.TableDescription `json:"schema"`
	Description string                             `json:"description"`
}

// SchemaHandler serves the static schema description. Read-only, no side
// effects.
type SchemaHandler struct {
	profile *schema.Profile
	logger  *zap.Logger
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(profile *schema.Profile, logger *zap.Logger) *SchemaHandler {
	return &SchemaHandler{profile: profile, logger: logger}
}

// RegisterRoutes registers the schema handler's routes on the given mux.
func (h *SchemaHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/schema", h.Get)
}

// Get handles GET /api/schema.
func (h *SchemaHandler) Get(w http.ResponseWriter, r *http.Request) {
	response := SchemaInfoResponse{
		Profile:     h.profile.Name,
		Schema:      h.profile.Tables,
		Description: "Database schema information for activity queries",
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode schema response", zap.Error(err))
	}
}
