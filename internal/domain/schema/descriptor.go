// Package schema defines the metadata descriptors the assignment core
// resolves at runtime: entity descriptors, field descriptors, and the
// declared-type tags that drive converter dispatch. Descriptors are
// read-only snapshots; nothing in this package mutates them after
// construction.
package schema

import (
	"fmt"
	"sort"

	"github.com/jsamuelsen11/record-intake-service/internal/domain"
)

// Field describes one field of one entity type: its name, declared type,
// and whether standard write access may set it.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Writable bool
}

// Entity describes a named record type and its field set. Field lookup is
// exact-match; the catalog that produced the descriptor is the case
// authority for both entity and field names.
type Entity struct {
	Name   string
	Label  string
	fields map[string]Field
}

// NewEntity builds an entity descriptor from a field list. Field type tags
// are normalized on the way in. Duplicate field names are an error; a
// descriptor with an ambiguous field set must never enter the catalog.
func NewEntity(name, label string, fields []Field) (*Entity, error) {
	if name == "" {
		return nil, fmt.Errorf("entity name must not be empty: %w", domain.ErrUnknownEntity)
	}

	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("entity %q: field with empty name", name)
		}
		if _, ok := byName[f.Name]; ok {
			return nil, fmt.Errorf("entity %q: duplicate field %q", name, f.Name)
		}
		f.Type = NormalizeType(string(f.Type))
		byName[f.Name] = f
	}

	return &Entity{Name: name, Label: label, fields: byName}, nil
}

// Field returns the descriptor for the named field.
// Returns domain.ErrUnknownField if the entity has no such field.
func (e *Entity) Field(name string) (Field, error) {
	f, ok := e.fields[name]
	if !ok {
		return Field{}, fmt.Errorf("entity %q has no field %q: %w", e.Name, name, domain.ErrUnknownField)
	}
	return f, nil
}

// Has reports whether the entity defines the named field.
func (e *Entity) Has(name string) bool {
	_, ok := e.fields[name]
	return ok
}

// Fields returns all field descriptors sorted by name.
func (e *Entity) Fields() []Field {
	out := make([]Field, 0, len(e.fields))
	for _, f := range e.fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FieldCount returns the number of fields the entity defines.
func (e *Entity) FieldCount() int {
	return len(e.fields)
}
