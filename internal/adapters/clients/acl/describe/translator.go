package describe

import (
	"sort"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
)

// ToEntity converts a downstream describe result to a domain entity
// descriptor. Type tags are normalized by the descriptor constructor, so
// "Currency" and "CURRENCY" both land on the canonical lowercase tag.
//
// A field counts as writable when the API reports it either createable or
// updateable. System-managed fields (audit timestamps, converted flags)
// report false for both and come through read-only.
func ToEntity(dto *DescribeResponseDTO) (*schema.Entity, error) {
	fields := make([]schema.Field, len(dto.Fields))
	for i, f := range dto.Fields {
		fields[i] = schema.Field{
			Name:     f.Name,
			Label:    f.Label,
			Type:     schema.FieldType(f.Type),
			Writable: f.Createable || f.Updateable,
		}
	}
	return schema.NewEntity(dto.Name, dto.Label, fields)
}

// ToEntityList converts a downstream sobject listing to shallow domain
// entity descriptors (name and label, no fields), sorted by name. Callers
// that need field metadata follow up with a describe per entity.
func ToEntityList(dto SObjectListResponseDTO) ([]schema.Entity, error) {
	entities := make([]schema.Entity, 0, len(dto.SObjects))
	for _, so := range dto.SObjects {
		ent, err := schema.NewEntity(so.Name, so.Label, nil)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *ent)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].Name < entities[j].Name })
	return entities, nil
}
