package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/record-intake-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// SchemaHandler handles HTTP requests for entity catalog reads.
type SchemaHandler struct {
	svc ports.IntakeService
}

// NewSchemaHandler creates a new SchemaHandler with the given service port.
func NewSchemaHandler(svc ports.IntakeService) *SchemaHandler {
	return &SchemaHandler{svc: svc}
}

// ListEntities handles GET /api/v1/entities.
func (h *SchemaHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.Entities(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntityListResponse(entities))
}

// GetEntity handles GET /api/v1/entities/{entity}.
func (h *SchemaHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	ent, err := h.svc.Entity(r.Context(), chi.URLParam(r, "entity"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntityResponse(ent))
}

// GetField handles GET /api/v1/entities/{entity}/fields/{field}.
func (h *SchemaHandler) GetField(w http.ResponseWriter, r *http.Request) {
	field, err := h.svc.Field(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "field"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFieldResponse(field))
}
