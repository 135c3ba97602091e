package acl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/record-intake-service/internal/app/fanout"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// Compile-time interface check.
var _ ports.SchemaProvider = (*CachedProvider)(nil)

// CachedProvider decorates a [ports.SchemaProvider] with a TTL cache over
// describe results. The assignment path performs one field lookup per
// incoming value, so an uncached remote provider would turn a ten-field
// record into ten describe round trips.
//
// Only successful lookups are cached. Concurrent misses for the same entity
// may fetch it more than once; the results are identical and the last write
// wins, so no request coordination is attempted.
type CachedProvider struct {
	inner  ports.SchemaProvider
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.RWMutex
	entities map[string]entityEntry
	listing  []schema.Entity
	listedAt time.Time
}

// entityEntry is one cached describe result with its fetch time.
type entityEntry struct {
	entity   *schema.Entity
	cachedAt time.Time
}

// NewCachedProvider wraps inner with a cache whose entries expire ttl after
// they were fetched. A non-positive ttl expires entries immediately, which
// disables caching in practice.
func NewCachedProvider(inner ports.SchemaProvider, ttl time.Duration, logger *slog.Logger) *CachedProvider {
	return &CachedProvider{
		inner:    inner,
		ttl:      ttl,
		logger:   logger,
		entities: make(map[string]entityEntry),
	}
}

// Warm prefetches the entity listing and every entity's describe result
// using at most workers concurrent requests. Individual describe failures
// are logged and skipped; Warm fails only when the listing itself cannot
// be fetched.
func (p *CachedProvider) Warm(ctx context.Context, workers int) error {
	listed, err := p.ListEntities(ctx)
	if err != nil {
		return fmt.Errorf("warming schema cache: %w", err)
	}

	names := make([]string, len(listed))
	for i, ent := range listed {
		names[i] = ent.Name
	}

	results := fanout.Run(ctx, workers, names, func(ctx context.Context, name string) (string, error) {
		if _, err := p.DescribeEntity(ctx, name); err != nil {
			return name, err
		}
		return name, nil
	})

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			p.logger.WarnContext(ctx, "schema cache warmup skipped entity",
				slog.String("entity", res.Value),
				slog.String("error", res.Err.Error()),
			)
		}
	}

	p.logger.InfoContext(ctx, "schema cache warmed",
		slog.Int("entities", len(names)-failed),
		slog.Int("failed", failed),
	)
	return nil
}

// ListEntities returns the cached entity listing, refreshing it from the
// inner provider when the cached copy has expired.
func (p *CachedProvider) ListEntities(ctx context.Context) ([]schema.Entity, error) {
	p.mu.RLock()
	if p.listing != nil && !p.expired(p.listedAt) {
		cached := p.listing
		p.mu.RUnlock()
		return cached, nil
	}
	p.mu.RUnlock()

	listed, err := p.inner.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.listing = listed
	p.listedAt = time.Now()
	p.mu.Unlock()
	return listed, nil
}

// DescribeEntity returns the cached descriptor for the named entity,
// fetching it from the inner provider on a miss or after expiry.
func (p *CachedProvider) DescribeEntity(ctx context.Context, entity string) (*schema.Entity, error) {
	p.mu.RLock()
	entry, ok := p.entities[entity]
	p.mu.RUnlock()
	if ok && !p.expired(entry.cachedAt) {
		return entry.entity, nil
	}

	ent, err := p.inner.DescribeEntity(ctx, entity)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.entities[entity] = entityEntry{entity: ent, cachedAt: time.Now()}
	p.mu.Unlock()
	return ent, nil
}

// DescribeField resolves one field of one entity through the cached
// descriptor.
func (p *CachedProvider) DescribeField(ctx context.Context, entity, field string) (schema.Field, error) {
	ent, err := p.DescribeEntity(ctx, entity)
	if err != nil {
		return schema.Field{}, err
	}
	return ent.Field(field)
}

// NewRecord instantiates an empty record of the named entity type, using
// the cached descriptor to confirm the entity exists.
func (p *CachedProvider) NewRecord(ctx context.Context, entity string) (*record.Record, error) {
	ent, err := p.DescribeEntity(ctx, entity)
	if err != nil {
		return nil, err
	}
	return record.New(ent.Name), nil
}

// expired reports whether a cache timestamp has outlived the TTL.
func (p *CachedProvider) expired(cachedAt time.Time) bool {
	return time.Since(cachedAt) >= p.ttl
}
