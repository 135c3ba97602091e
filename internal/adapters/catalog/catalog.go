// Package catalog implements the schema provider port backed by a YAML
// catalog file. The catalog is read once at construction and immutable
// afterward, so lookups need no locking and never touch the filesystem.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/record-intake-service/internal/domain"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/record"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SchemaProvider = (*Provider)(nil)
	_ ports.HealthChecker  = (*Provider)(nil)
)

// catalogFile mirrors the YAML catalog document.
type catalogFile struct {
	Entities []entityEntry `koanf:"entities"`
}

type entityEntry struct {
	Name   string       `koanf:"name"`
	Label  string       `koanf:"label"`
	Fields []fieldEntry `koanf:"fields"`
}

type fieldEntry struct {
	Name     string `koanf:"name"`
	Label    string `koanf:"label"`
	Type     string `koanf:"type"`
	Writable bool   `koanf:"writable"`
}

// Provider is a file-backed, read-only schema provider.
type Provider struct {
	path     string
	entities map[string]*schema.Entity
	names    []string
}

// Load reads and validates the catalog at path. Unrecognized field type
// tags are accepted (they resolve to the text conversion path) but logged,
// since in a hand-maintained catalog they are more likely typos than new
// platform types. Duplicate entity names and empty catalogs are errors.
func Load(path string, logger *slog.Logger) (*Provider, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}

	var cf catalogFile
	if err := k.Unmarshal("", &cf); err != nil {
		return nil, fmt.Errorf("unmarshalling catalog %s: %w", path, err)
	}

	if len(cf.Entities) == 0 {
		return nil, fmt.Errorf("catalog %s defines no entities", path)
	}

	entities := make(map[string]*schema.Entity, len(cf.Entities))
	names := make([]string, 0, len(cf.Entities))

	for _, e := range cf.Entities {
		if _, ok := entities[e.Name]; ok {
			return nil, fmt.Errorf("catalog %s: duplicate entity %q", path, e.Name)
		}

		fields := make([]schema.Field, 0, len(e.Fields))
		for _, f := range e.Fields {
			typ := schema.NormalizeType(f.Type)
			if !typ.IsValid() {
				logger.Warn("unrecognized field type tag in catalog",
					slog.String("entity", e.Name),
					slog.String("field", f.Name),
					slog.String("type", f.Type),
				)
			}
			fields = append(fields, schema.Field{
				Name:     f.Name,
				Label:    f.Label,
				Type:     typ,
				Writable: f.Writable,
			})
		}

		ent, err := schema.NewEntity(e.Name, e.Label, fields)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}

		entities[e.Name] = ent
		names = append(names, e.Name)
	}

	sort.Strings(names)

	return &Provider{path: path, entities: entities, names: names}, nil
}

// ListEntities returns every entity descriptor sorted by name.
func (p *Provider) ListEntities(_ context.Context) ([]schema.Entity, error) {
	out := make([]schema.Entity, 0, len(p.names))
	for _, name := range p.names {
		out = append(out, *p.entities[name])
	}
	return out, nil
}

// DescribeEntity returns the descriptor for the named entity type.
// Entity names are matched exactly; the catalog file is the case authority.
func (p *Provider) DescribeEntity(_ context.Context, entity string) (*schema.Entity, error) {
	ent, ok := p.entities[entity]
	if !ok {
		return nil, fmt.Errorf("no descriptor for %q: %w", entity, domain.ErrUnknownEntity)
	}
	return ent, nil
}

// DescribeField returns the descriptor for one field of one entity.
func (p *Provider) DescribeField(ctx context.Context, entity, field string) (schema.Field, error) {
	ent, err := p.DescribeEntity(ctx, entity)
	if err != nil {
		return schema.Field{}, err
	}
	return ent.Field(field)
}

// NewRecord instantiates an empty record of the named entity type.
func (p *Provider) NewRecord(ctx context.Context, entity string) (*record.Record, error) {
	ent, err := p.DescribeEntity(ctx, entity)
	if err != nil {
		return nil, err
	}
	return record.New(ent.Name), nil
}

// Name identifies this component in health reports.
func (p *Provider) Name() string {
	return "catalog"
}

// HealthCheck verifies the backing catalog file is still present. The
// in-memory descriptors keep serving either way; a missing file means the
// next restart would fail, which is worth surfacing before it happens.
func (p *Provider) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(p.path); err != nil {
		return fmt.Errorf("catalog file %s: %w", p.path, err)
	}
	return nil
}
