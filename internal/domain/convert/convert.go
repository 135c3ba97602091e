// Package convert implements the fixed type-to-converter table at the heart
// of field assignment. Each converter is a pure function from a raw string
// to a typed value; the table maps declared-type tags to converters, and
// every tag without an entry falls through to the lossless store-as-text
// path. The table is fixed at build time: the set of specially-converted
// types is a closed contract, and extending it means adding a row here.
package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/record-intake-service/internal/domain/schema"
	"github.com/jsamuelsen11/record-intake-service/internal/domain/value"
)

// Func converts one raw string into a typed value, or reports why the
// string is not a valid literal for the target type.
type Func func(raw string) (value.Value, error)

// converters is the dispatch table. Currency and double share the exact
// decimal parser; checkbox and boolean share the strict boolean parser.
// Tags absent from this table resolve to text.
var converters = map[schema.FieldType]Func{
	schema.TypeDateTime: parseDateTime,
	schema.TypeDate:     parseDate,
	schema.TypeCurrency: parseDecimal,
	schema.TypeDouble:   parseDecimal,
	schema.TypeCheckbox: parseBool,
	schema.TypeBoolean:  parseBool,
}

// Convert turns a raw string into the typed value for the given declared
// type. The tag is normalized before dispatch. Tags without a table entry,
// including unknown ones, return value.Text(raw) and never fail.
//
// The caller is expected to pass raw already trimmed; Convert does not trim.
func Convert(t schema.FieldType, raw string) (value.Value, error) {
	fn, ok := converters[schema.NormalizeType(string(t))]
	if !ok {
		return value.Text(raw), nil
	}
	return fn(raw)
}

// HasConverter reports whether the tag has a dedicated table entry, i.e.
// whether Convert can fail for it.
func HasConverter(t schema.FieldType) bool {
	_, ok := converters[schema.NormalizeType(string(t))]
	return ok
}

// dateTimeLayouts are tried in order. time.Parse accepts fractional
// seconds after the seconds field even when the layout omits them, so the
// RFC 3339 entry also covers millisecond timestamps. Layouts without a
// zone parse as UTC.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseDateTime(raw string) (value.Value, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return value.NewDateTime(t), nil
		}
	}
	return nil, fmt.Errorf("%q is not a recognized datetime literal", raw)
}

func parseDate(raw string) (value.Value, error) {
	t, err := time.Parse(value.DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a %s date literal", raw, value.DateLayout)
	}
	return value.NewDate(t), nil
}

func parseDecimal(raw string) (value.Value, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not a decimal literal", raw)
	}
	return value.NewDecimal(d), nil
}

// parseBool accepts exactly "true" and "false", case-insensitively.
// Looser forms like "1", "t", or "yes" are rejected on purpose: a checkbox
// literal that is not an unambiguous boolean must surface as a conversion
// failure, not a guess.
func parseBool(raw string) (value.Value, error) {
	switch {
	case strings.EqualFold(raw, "true"):
		return value.Bool(true), nil
	case strings.EqualFold(raw, "false"):
		return value.Bool(false), nil
	default:
		return nil, fmt.Errorf("%q is not a boolean literal (want true or false)", raw)
	}
}
