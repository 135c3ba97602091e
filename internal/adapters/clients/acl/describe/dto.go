// Package describe implements the Anti-Corruption Layer translators for the
// platform metadata API's entity listing and describe resources.
package describe

// SObjectDTO matches one entry of the downstream sobject listing. The
// listing carries identity only; field metadata comes from the describe
// resource.
type SObjectDTO struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// SObjectListResponseDTO matches the downstream sobject listing envelope.
type SObjectListResponseDTO struct {
	SObjects []SObjectDTO `json:"sobjects"`
}

// FieldDTO matches one field entry of a downstream describe result. The API
// splits write access into createable and updateable; the domain collapses
// them into a single writable flag.
type FieldDTO struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	Type       string `json:"type"`
	Createable bool   `json:"createable"`
	Updateable bool   `json:"updateable"`
}

// DescribeResponseDTO matches the downstream describe result for one
// entity type.
type DescribeResponseDTO struct {
	Name   string     `json:"name"`
	Label  string     `json:"label"`
	Fields []FieldDTO `json:"fields"`
}
