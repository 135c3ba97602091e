package ports

import (
	"context"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
)

// IntakeService defines the service port for record intake and catalog
// reads. Implemented by the application layer; called by inbound adapters
// (handlers).
type IntakeService interface {
	// BuildRecord instantiates an empty record of the named entity type and
	// assigns every (field, raw value) pair from values into it, in sorted
	// field order. Per-field problems (blank input, unknown field,
	// non-writable field, conversion failure) are contained by the
	// assignment core: the field is simply absent from the returned record
	// and a diagnostic is logged. The only error this method returns is the
	// request-level one: the entity type itself cannot be resolved.
	//
	// The returned record is not persisted anywhere; the caller owns it.
	BuildRecord(ctx context.Context, entity string, values map[string]string) (*record.Record, error)

	// Entities returns all entity descriptors in the catalog.
	Entities(ctx context.Context) ([]schema.Entity, error)

	// Entity returns one entity descriptor.
	// Returns domain.ErrUnknownEntity if the name is not in the catalog.
	Entity(ctx context.Context, name string) (*schema.Entity, error)

	// Field returns one field descriptor.
	// Returns domain.ErrUnknownEntity or domain.ErrUnknownField when the
	// pair cannot be resolved.
	Field(ctx context.Context, entity, field string) (schema.Field, error)
}
