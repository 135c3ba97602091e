package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/record-intake-service/internal/adapters/clients/acl/describe"
	"github.com/jsamuelsen11/record-intake-service/internal/domain"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SchemaProvider = (*SchemaClient)(nil)
	_ ports.HealthChecker  = (*SchemaClient)(nil)
)

// SchemaClient is the outbound adapter for the platform metadata API. It
// implements [ports.SchemaProvider] against the sobject listing and
// describe endpoints.
//
// Responses are translated to domain descriptors by the ACL translators in
// the [describe] sub-package. HTTP errors are mapped to domain errors
// (ErrUnknownEntity, ErrUnavailable, etc.) by [TranslateHTTPError].
//
// Every DescribeEntity call is a network round trip. Wrap the client in a
// [CachedProvider] before handing it to the assignment path, which performs
// one field lookup per incoming value.
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and rate limiting for every
// outbound call.
type SchemaClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewSchemaClient creates a SchemaClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the
// metadata API root (e.g. "https://platform.example.com"). The logger is
// used for error-level diagnostics on failed or unexpected responses.
func NewSchemaClient(client *httpclient.Client, logger *slog.Logger) *SchemaClient {
	return &SchemaClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListEntities fetches the entity catalog from GET /api/v2/sobjects. The
// listing is shallow: descriptors carry name and label but no fields.
// Returns the translated domain slice, sorted by name, or a domain error
// on failure.
func (c *SchemaClient) ListEntities(ctx context.Context) ([]schema.Entity, error) {
	var dto describe.SObjectListResponseDTO
	if err := c.req.Get(ctx, "/api/v2/sobjects", &dto); err != nil {
		return nil, err
	}
	return describe.ToEntityList(dto)
}

// DescribeEntity fetches the full descriptor for one entity type from
// GET /api/v2/sobjects/{entity}/describe. Returns [domain.ErrUnknownEntity]
// if the downstream API returns 404.
func (c *SchemaClient) DescribeEntity(ctx context.Context, entity string) (*schema.Entity, error) {
	if entity == "" {
		return nil, fmt.Errorf("entity name must not be blank: %w", domain.ErrUnknownEntity)
	}
	path := fmt.Sprintf("/api/v2/sobjects/%s/describe", url.PathEscape(entity))

	var dto describe.DescribeResponseDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	return describe.ToEntity(&dto)
}

// DescribeField resolves one field of one entity. The API has no per-field
// resource, so this describes the entity and resolves the field locally.
// Returns [domain.ErrUnknownEntity] or [domain.ErrUnknownField] when the
// pair cannot be resolved.
func (c *SchemaClient) DescribeField(ctx context.Context, entity, field string) (schema.Field, error) {
	ent, err := c.DescribeEntity(ctx, entity)
	if err != nil {
		return schema.Field{}, err
	}
	return ent.Field(field)
}

// NewRecord instantiates an empty record of the named entity type. The
// entity is described first so an unknown name fails here rather than on
// the first field assignment.
func (c *SchemaClient) NewRecord(ctx context.Context, entity string) (*record.Record, error) {
	ent, err := c.DescribeEntity(ctx, entity)
	if err != nil {
		return nil, err
	}
	return record.New(ent.Name), nil
}
