// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces. The central piece is the Assigner, the metadata-driven
// field-value assignment core.
package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/record-intake-service/internal/domain"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/convert"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// Outcome labels the result of one assignment attempt. Used for the
// assignment metric and for deciding which diagnostic, if any, to emit.
type Outcome string

const (
	// OutcomeAssigned means the converted value was written to the record.
	OutcomeAssigned Outcome = "assigned"
	// OutcomeBlank means the raw value was blank; nothing to assign.
	OutcomeBlank Outcome = "blank"
	// OutcomeSchemaUnresolved means the entity or field descriptor could
	// not be resolved (unknown name, or provider unavailable).
	OutcomeSchemaUnresolved Outcome = "schema_unresolved"
	// OutcomeNotWritable means the field descriptor forbids writes.
	OutcomeNotWritable Outcome = "not_writable"
	// OutcomeConversionFailed means the raw value is not a valid literal
	// for the field's declared type.
	OutcomeConversionFailed Outcome = "conversion_failed"
)

var errNilRecord = errors.New("nil target record")

// Assigner resolves an entity+field pair to its declared type, converts the
// raw string through the fixed type-to-converter table, and mutates the
// target record in place.
//
// Assign never returns an error and never panics. Every failure mode
// (unresolvable schema, non-writable field, unparsable value) is contained:
// one diagnostic log line is emitted and the record is left untouched. This
// is a deliberate reliability contract for bulk intake use, where one bad
// field must not abort processing of the rest; it is not an oversight.
// Callers that need to detect a failed assignment must check the record for
// the field afterward or watch the diagnostic stream.
type Assigner struct {
	schema  ports.SchemaProvider
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewAssigner creates an Assigner. The provider resolves field descriptors
// at runtime; metrics may be nil, in which case outcome counting is skipped.
func NewAssigner(provider ports.SchemaProvider, logger *slog.Logger, metrics *telemetry.Metrics) *Assigner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Assigner{
		schema:  provider,
		logger:  logger,
		metrics: metrics,
	}
}

// Assign writes the converted form of rawValue into rec under fieldName,
// using the declared type of (entityName, fieldName) to pick the
// conversion.
//
// Ordered behavior:
//
//  1. Blank rawValue (empty or whitespace-only) is a silent no-op: blank
//     means "nothing to assign", not "clear the field".
//  2. The field descriptor is resolved through the schema provider; an
//     unresolvable entity or field is contained and logged.
//  3. A non-writable field is skipped and logged.
//  4. The trimmed value is converted per the declared type's table entry;
//     tags without an entry store the trimmed string as-is.
//  5. The converted value is written to the record.
//
// Control always returns normally, whatever happened. See the type comment
// for the containment contract.
func (a *Assigner) Assign(ctx context.Context, rec *record.Record, rawValue, entityName, fieldName string) {
	outcome, fieldType, err := a.apply(ctx, rec, rawValue, entityName, fieldName)
	a.count(ctx, outcome, entityName, fieldType)

	switch outcome {
	case OutcomeAssigned, OutcomeBlank:
		// No diagnostic on the happy or no-op paths.
	case OutcomeNotWritable:
		a.logger.WarnContext(ctx, "skipping non-writable field",
			slog.String("operation", "Assign"),
			slog.String("entity", entityName),
			slog.String("field", fieldName),
			slog.String("raw_value", rawValue),
		)
	default:
		a.logger.WarnContext(ctx, "field assignment failed",
			slog.String("operation", "Assign"),
			slog.String("entity", entityName),
			slog.String("field", fieldName),
			slog.String("raw_value", rawValue),
			slog.String("outcome", string(outcome)),
			slog.Any("error", err),
		)
	}
}

// apply runs the assignment steps and reports the outcome internally so
// that Assign can log and count it. The declared type is returned when it
// was resolved, for metric labeling.
func (a *Assigner) apply(ctx context.Context, rec *record.Record, rawValue, entityName, fieldName string) (Outcome, schema.FieldType, error) {
	if strings.TrimSpace(rawValue) == "" {
		return OutcomeBlank, "", nil
	}

	if rec == nil {
		return OutcomeSchemaUnresolved, "", errNilRecord
	}

	field, err := a.schema.DescribeField(ctx, entityName, fieldName)
	if err != nil {
		return OutcomeSchemaUnresolved, "", err
	}

	if !field.Writable {
		return OutcomeNotWritable, field.Type, domain.ErrNotWritable
	}

	trimmed := strings.TrimSpace(rawValue)

	converted, err := convert.Convert(field.Type, trimmed)
	if err != nil {
		return OutcomeConversionFailed, field.Type, &domain.ConversionError{
			Field: fieldName,
			Raw:   trimmed,
			Type:  field.Type.String(),
			Err:   err,
		}
	}

	rec.Set(fieldName, converted)
	return OutcomeAssigned, field.Type, nil
}

// count records the assignment outcome metric. Safe with nil metrics.
func (a *Assigner) count(ctx context.Context, outcome Outcome, entity string, fieldType schema.FieldType) {
	if a.metrics == nil {
		return
	}
	a.metrics.CountAssignment(ctx, string(outcome), entity, fieldType.String())
}
