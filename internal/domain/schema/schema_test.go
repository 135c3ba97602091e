package schema

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/record-intake-service/internal/domain"
)

func TestNormalizeType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want FieldType
	}{
		{
			name: "lowercase passes through",
			raw:  "currency",
			want: TypeCurrency,
		},
		{
			name: "uppercase is lowered",
			raw:  "DATETIME",
			want: TypeDateTime,
		},
		{
			name: "mixed case is lowered",
			raw:  "Boolean",
			want: TypeBoolean,
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  date  ",
			want: TypeDate,
		},
		{
			name: "unknown tag normalizes without erroring",
			raw:  "GeoLocation",
			want: FieldType("geolocation"),
		},
		{
			name: "empty string stays empty",
			raw:  "",
			want: FieldType(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeType(tt.raw); got != tt.want {
				t.Errorf("NormalizeType(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFieldType_IsValid(t *testing.T) {
	t.Parallel()

	valid := []FieldType{
		TypeDateTime, TypeDate, TypeCurrency, TypeDouble, TypeCheckbox,
		TypeBoolean, TypeText, TypeTextArea, TypePicklist, TypeRef,
		TypeID, TypeEmail, TypePhone, TypeURL,
	}
	for _, ft := range valid {
		if !ft.IsValid() {
			t.Errorf("FieldType(%q).IsValid() = false, want true", ft)
		}
	}

	invalid := []FieldType{"", "geolocation", "Currency", "number"}
	for _, ft := range invalid {
		if ft.IsValid() {
			t.Errorf("FieldType(%q).IsValid() = true, want false", ft)
		}
	}
}

func TestNewEntity(t *testing.T) {
	t.Parallel()

	fields := []Field{
		{Name: "Name", Label: "Account Name", Type: TypeText, Writable: true},
		{Name: "AnnualRevenue", Label: "Annual Revenue", Type: TypeCurrency, Writable: true},
		{Name: "CreatedDate", Label: "Created Date", Type: TypeDateTime, Writable: false},
	}

	ent, err := NewEntity("Account", "Account", fields)
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	if ent.Name != "Account" {
		t.Errorf("Name = %q, want %q", ent.Name, "Account")
	}
	if ent.FieldCount() != 3 {
		t.Errorf("FieldCount() = %d, want 3", ent.FieldCount())
	}
}

func TestNewEntity_NormalizesFieldTypes(t *testing.T) {
	t.Parallel()

	ent, err := NewEntity("Account", "Account", []Field{
		{Name: "AnnualRevenue", Type: "Currency", Writable: true},
	})
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	f, err := ent.Field("AnnualRevenue")
	if err != nil {
		t.Fatalf("Field() error = %v", err)
	}
	if f.Type != TypeCurrency {
		t.Errorf("Type = %q, want %q (normalized)", f.Type, TypeCurrency)
	}
}

func TestNewEntity_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := NewEntity("", "", nil)
	if err == nil {
		t.Fatal("NewEntity(\"\") error = nil, want error")
	}
}

func TestNewEntity_EmptyFieldName(t *testing.T) {
	t.Parallel()

	_, err := NewEntity("Account", "Account", []Field{
		{Name: "", Type: TypeText},
	})
	if err == nil {
		t.Fatal("NewEntity with empty field name error = nil, want error")
	}
}

func TestNewEntity_DuplicateField(t *testing.T) {
	t.Parallel()

	_, err := NewEntity("Account", "Account", []Field{
		{Name: "Name", Type: TypeText},
		{Name: "Name", Type: TypeTextArea},
	})
	if err == nil {
		t.Fatal("NewEntity with duplicate field error = nil, want error")
	}
}

func TestEntity_Field_Unknown(t *testing.T) {
	t.Parallel()

	ent, err := NewEntity("Contact", "Contact", []Field{
		{Name: "Email", Type: TypeEmail, Writable: true},
	})
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	_, err = ent.Field("NoSuchField")
	if !errors.Is(err, domain.ErrUnknownField) {
		t.Errorf("Field(\"NoSuchField\") error = %v, want ErrUnknownField", err)
	}
}

func TestEntity_Field_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	ent, err := NewEntity("Contact", "Contact", []Field{
		{Name: "Email", Type: TypeEmail, Writable: true},
	})
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	// Field names are case sensitive; "email" does not resolve to "Email".
	if _, err := ent.Field("email"); !errors.Is(err, domain.ErrUnknownField) {
		t.Errorf("Field(\"email\") error = %v, want ErrUnknownField", err)
	}
	if !ent.Has("Email") {
		t.Error("Has(\"Email\") = false, want true")
	}
	if ent.Has("email") {
		t.Error("Has(\"email\") = true, want false")
	}
}

func TestEntity_Fields_Sorted(t *testing.T) {
	t.Parallel()

	ent, err := NewEntity("Opportunity", "Opportunity", []Field{
		{Name: "StageName", Type: TypePicklist},
		{Name: "Amount", Type: TypeCurrency},
		{Name: "CloseDate", Type: TypeDate},
	})
	if err != nil {
		t.Fatalf("NewEntity() error = %v", err)
	}

	fields := ent.Fields()
	want := []string{"Amount", "CloseDate", "StageName"}
	if len(fields) != len(want) {
		t.Fatalf("len(Fields()) = %d, want %d", len(fields), len(want))
	}
	for i, name := range want {
		if fields[i].Name != name {
			t.Errorf("Fields()[%d].Name = %q, want %q", i, fields[i].Name, name)
		}
	}
}
