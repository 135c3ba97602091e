package ports

import (
	"context"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
)

// SchemaProvider is the schema/metadata lookup port the assignment core
// depends on. Implemented by the file-backed catalog and by the remote
// metadata API client; called by the application layer.
//
// All lookups are read-only. Implementations are expected to be cheap or
// cached, since the assignment path performs one DescribeField call per
// field. Failures must be returned as errors, never panics: the core
// contains every lookup failure.
type SchemaProvider interface {
	// ListEntities returns descriptors for every entity type the provider
	// knows, sorted by name.
	ListEntities(ctx context.Context) ([]schema.Entity, error)

	// DescribeEntity returns the descriptor for the named entity type.
	// Returns domain.ErrUnknownEntity if the name is not in the catalog.
	DescribeEntity(ctx context.Context, entity string) (*schema.Entity, error)

	// DescribeField returns the descriptor for one field of one entity.
	// Returns domain.ErrUnknownEntity or domain.ErrUnknownField when the
	// pair cannot be resolved.
	DescribeField(ctx context.Context, entity, field string) (schema.Field, error)

	// NewRecord instantiates an empty record of the named entity type.
	// Returns domain.ErrUnknownEntity if the name is not in the catalog.
	NewRecord(ctx context.Context, entity string) (*record.Record, error)
}
