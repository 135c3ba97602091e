package dto

import (
	"github.com/jsamuelsen11/record-intake-service/internal/domain"
)

const msgMustNotEmpty = "must not be empty"

// AssignValuesRequest represents the JSON body for building a record from
// raw field values. Keys are field names; values are the raw strings to
// convert and assign. Non-string JSON values are rejected at decode time:
// the intake contract is raw text in, typed record out.
type AssignValuesRequest struct {
	Values map[string]string `json:"values"`
}

// Validate checks that at least one value pair is present.
// Returns a *domain.ValidationError if the check fails.
func (r *AssignValuesRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Values) == 0 {
		fields["values"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
