package schema

import "strings"

// FieldType is the canonical lowercase tag for a field's declared data type.
//
// Only the tags with dedicated converters (datetime, date, currency, double,
// checkbox, boolean) change assignment behavior. Every other tag, including
// ones not listed here, takes the store-as-text path, so an unknown or newly
// introduced platform type degrades to "stored as string" rather than an
// error.
type FieldType string

const (
	TypeDateTime FieldType = "datetime"
	TypeDate     FieldType = "date"
	TypeCurrency FieldType = "currency"
	TypeDouble   FieldType = "double"
	TypeCheckbox FieldType = "checkbox"
	TypeBoolean  FieldType = "boolean"
	TypeText     FieldType = "text"
	TypeTextArea FieldType = "textarea"
	TypePicklist FieldType = "picklist"
	TypeRef      FieldType = "reference"
	TypeID       FieldType = "id"
	TypeEmail    FieldType = "email"
	TypePhone    FieldType = "phone"
	TypeURL      FieldType = "url"
)

// NormalizeType canonicalizes a raw type tag: trimmed and lowercased.
// Unknown tags pass through unchanged apart from normalization; they are
// legal and resolve to the text conversion path.
func NormalizeType(raw string) FieldType {
	return FieldType(strings.ToLower(strings.TrimSpace(raw)))
}

// IsValid returns true if the type is one of the defined platform tags.
// Catalog validation uses this to flag likely typos; the assignment path
// deliberately does not.
func (t FieldType) IsValid() bool {
	switch t {
	case TypeDateTime, TypeDate, TypeCurrency, TypeDouble, TypeCheckbox,
		TypeBoolean, TypeText, TypeTextArea, TypePicklist, TypeRef,
		TypeID, TypeEmail, TypePhone, TypeURL:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t FieldType) String() string {
	return string(t)
}
