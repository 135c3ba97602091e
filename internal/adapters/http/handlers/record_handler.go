// Package handlers provides HTTP handlers for record intake, catalog reads,
// and health endpoints.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/record-intake-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// RecordHandler handles HTTP requests for record intake.
type RecordHandler struct {
	svc ports.IntakeService
}

// NewRecordHandler creates a new RecordHandler with the given service port.
func NewRecordHandler(svc ports.IntakeService) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// BuildRecord handles POST /api/v1/records/{entity}.
//
// The body carries raw string values keyed by field name. Each pair is
// assigned through the conversion core; pairs that cannot be assigned
// (blank input, unknown field, non-writable field, bad value) are logged
// server-side and omitted from the response rather than failing it. The
// request only fails as a whole when the body is invalid or the entity
// type itself cannot be resolved.
func (h *RecordHandler) BuildRecord(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	var req dto.AssignValuesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.svc.BuildRecord(r.Context(), entity, req.Values)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToRecordResponse(rec))
}
