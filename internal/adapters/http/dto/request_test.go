package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/record-intake-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/record-intake-service/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestAssignValuesRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.AssignValuesRequest
		wantErr bool
	}{
		{
			name: "valid single value",
			req:  dto.AssignValuesRequest{Values: map[string]string{"Name": "Acme"}},
		},
		{
			name: "valid multiple values",
			req: dto.AssignValuesRequest{Values: map[string]string{
				"Name":          "Acme",
				"AnnualRevenue": "1234.50",
			}},
		},
		{
			name: "blank raw values are legal, the core treats them as no-ops",
			req:  dto.AssignValuesRequest{Values: map[string]string{"Email": "   "}},
		},
		{
			name:    "nil values map",
			req:     dto.AssignValuesRequest{},
			wantErr: true,
		},
		{
			name:    "empty values map",
			req:     dto.AssignValuesRequest{Values: map[string]string{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "values")
		})
	}
}

func TestAssignValuesRequest_DecodeRejectsNonStringValues(t *testing.T) {
	t.Parallel()

	// The intake contract is raw strings; JSON numbers and booleans must
	// fail at decode time rather than being coerced.
	body := `{"values":{"AnnualRevenue":1234.5}}`

	var req dto.AssignValuesRequest
	if err := json.Unmarshal([]byte(body), &req); err == nil {
		t.Fatal("Unmarshal() = nil, want type error for non-string value")
	}
}

func TestAssignValuesRequest_DecodePreservesRawStrings(t *testing.T) {
	t.Parallel()

	body := `{"values":{"CloseDate":" 2026-03-15 ","IsEscalated":"TRUE"}}`

	var req dto.AssignValuesRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	// Raw values pass through untrimmed and case-preserved; normalization
	// belongs to the assignment core, not the transport.
	if got := req.Values["CloseDate"]; got != " 2026-03-15 " {
		t.Errorf("Values[CloseDate] = %q, want %q", got, " 2026-03-15 ")
	}
	if got := req.Values["IsEscalated"]; got != "TRUE" {
		t.Errorf("Values[IsEscalated] = %q, want %q", got, "TRUE")
	}
}
