// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/value"
)

// RecordResponse represents an assembled record in HTTP responses. Values
// are keyed by field name; a field whose assignment was skipped or failed
// is simply absent from the map.
type RecordResponse struct {
	Entity string         `json:"entity"`
	Values map[string]any `json:"values"`
	Count  int            `json:"count"`
}

// ToRecordResponse converts a domain record to an HTTP response DTO.
func ToRecordResponse(rec *record.Record) RecordResponse {
	values := make(map[string]any, rec.Len())
	for name, v := range rec.Values() {
		values[name] = valueJSON(v)
	}
	return RecordResponse{
		Entity: rec.Entity(),
		Values: values,
		Count:  len(values),
	}
}

// valueJSON maps one value-union variant onto its JSON representation.
// Booleans serialize as JSON booleans. Everything else uses the canonical
// literal form: decimals as exact strings (a JSON number is a float, and
// exact decimals must not round-trip through one), dates as "2006-01-02",
// datetimes as RFC 3339, text as-is.
func valueJSON(v value.Value) any {
	if b, ok := v.(value.Bool); ok {
		return bool(b)
	}
	return v.String()
}

// FieldResponse represents a single field descriptor in HTTP responses.
type FieldResponse struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Type     string `json:"type"`
	Writable bool   `json:"writable"`
}

// ToFieldResponse converts a domain field descriptor to an HTTP response DTO.
func ToFieldResponse(f schema.Field) FieldResponse {
	return FieldResponse{
		Name:     f.Name,
		Label:    f.Label,
		Type:     f.Type.String(),
		Writable: f.Writable,
	}
}

// EntityResponse represents a single entity descriptor with its full field
// set in HTTP responses.
type EntityResponse struct {
	Name   string          `json:"name"`
	Label  string          `json:"label,omitempty"`
	Fields []FieldResponse `json:"fields"`
}

// ToEntityResponse converts a domain entity descriptor to an HTTP response
// DTO. Fields come out sorted by name.
func ToEntityResponse(e *schema.Entity) EntityResponse {
	fields := e.Fields()
	items := make([]FieldResponse, len(fields))
	for i, f := range fields {
		items[i] = ToFieldResponse(f)
	}
	return EntityResponse{
		Name:   e.Name,
		Label:  e.Label,
		Fields: items,
	}
}

// EntitySummary represents a single entity in listing responses: identity
// only, no fields. Clients fetch the full descriptor per entity.
type EntitySummary struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
}

// EntityListResponse represents the entity catalog listing in HTTP responses.
type EntityListResponse struct {
	Entities []EntitySummary `json:"entities"`
	Count    int             `json:"count"`
}

// ToEntityListResponse converts a slice of domain entity descriptors to an
// HTTP listing DTO.
func ToEntityListResponse(entities []schema.Entity) EntityListResponse {
	items := make([]EntitySummary, len(entities))
	for i := range entities {
		items[i] = EntitySummary{
			Name:  entities[i].Name,
			Label: entities[i].Label,
		}
	}
	return EntityListResponse{
		Entities: items,
		Count:    len(items),
	}
}
