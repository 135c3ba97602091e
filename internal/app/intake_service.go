package app

import (
	"context"
	"log/slog"
	"sort"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// Compile-time check that IntakeService implements ports.IntakeService.
var _ ports.IntakeService = (*IntakeService)(nil)

// IntakeService implements ports.IntakeService. It owns the calling glue
// around the Assigner: instantiate an empty record, assign each submitted
// field, hand the record back. It never persists anything.
type IntakeService struct {
	provider ports.SchemaProvider
	assigner *Assigner
	logger   *slog.Logger
}

// NewIntakeService creates an IntakeService on top of a schema provider and
// an assigner.
func NewIntakeService(provider ports.SchemaProvider, assigner *Assigner, logger *slog.Logger) *IntakeService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &IntakeService{
		provider: provider,
		assigner: assigner,
		logger:   logger,
	}
}

// BuildRecord instantiates an empty record of the named entity type and
// assigns every submitted field into it, in sorted field order so that
// diagnostics come out deterministically. Per-field problems are contained
// by the assigner; the only returned error is an unresolvable entity type.
func (s *IntakeService) BuildRecord(ctx context.Context, entity string, values map[string]string) (*record.Record, error) {
	s.logger.InfoContext(ctx, "building record",
		slog.String("entity", entity),
		slog.Int("submitted_fields", len(values)),
	)

	rec, err := s.provider.NewRecord(ctx, entity)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to instantiate record",
			slog.String("operation", "BuildRecord"),
			slog.String("entity", entity),
			slog.Any("error", err),
		)
		return nil, err
	}

	fields := make([]string, 0, len(values))
	for field := range values {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		s.assigner.Assign(ctx, rec, values[field], entity, field)
	}

	s.logger.InfoContext(ctx, "record built",
		slog.String("entity", entity),
		slog.Int("submitted_fields", len(values)),
		slog.Int("assigned_fields", rec.Len()),
	)
	return rec, nil
}

// Entities returns all entity descriptors in the catalog.
func (s *IntakeService) Entities(ctx context.Context) ([]schema.Entity, error) {
	entities, err := s.provider.ListEntities(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list entities",
			slog.String("operation", "Entities"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return entities, nil
}

// Entity returns one entity descriptor by name.
func (s *IntakeService) Entity(ctx context.Context, name string) (*schema.Entity, error) {
	entity, err := s.provider.DescribeEntity(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to describe entity",
			slog.String("operation", "Entity"),
			slog.String("entity", name),
			slog.Any("error", err),
		)
		return nil, err
	}
	return entity, nil
}

// Field returns one field descriptor.
func (s *IntakeService) Field(ctx context.Context, entity, field string) (schema.Field, error) {
	f, err := s.provider.DescribeField(ctx, entity, field)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to describe field",
			slog.String("operation", "Field"),
			slog.String("entity", entity),
			slog.String("field", field),
			slog.Any("error", err),
		)
		return schema.Field{}, err
	}
	return f, nil
}
