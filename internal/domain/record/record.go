// Package record provides the generic target record that field assignment
// mutates: a field-name-keyed collection of typed values, polymorphic over
// entity type. The caller owns the record's lifecycle; this package never
// persists one.
package record

import (
	"sort"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/value"
)

// Record is a mutable, field-name-keyed record of one entity type.
//
// A Record is not safe for concurrent mutation. Assignment is a single
// synchronous operation per call, and callers that share a record across
// goroutines must serialize access themselves.
type Record struct {
	entity string
	fields map[string]value.Value
}

// New creates an empty record of the named entity type.
func New(entity string) *Record {
	return &Record{
		entity: entity,
		fields: make(map[string]value.Value),
	}
}

// Entity returns the record's entity type name.
func (r *Record) Entity() string {
	return r.entity
}

// Set writes a typed value under the field name, replacing any prior value.
func (r *Record) Set(field string, v value.Value) {
	r.fields[field] = v
}

// Get returns the value stored under the field name. The second return is
// false when the field has never been set; absence is the caller-visible
// signal that an assignment was skipped or failed.
func (r *Record) Get(field string) (value.Value, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Has reports whether a value is stored under the field name.
func (r *Record) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Len returns the number of fields with stored values.
func (r *Record) Len() int {
	return len(r.fields)
}

// FieldNames returns the names of all set fields in sorted order.
func (r *Record) FieldNames() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values returns a copy of the field map. Mutating the copy does not
// affect the record.
func (r *Record) Values() map[string]value.Value {
	out := make(map[string]value.Value, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}
