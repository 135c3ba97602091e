// Package value defines the sealed union of converted field values.
// A converter produces exactly one of Text, Bool, Decimal, Date, or
// DateTime; records store these and nothing else, so consumers can
// type-switch exhaustively without boxing surprises.
package value

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Canonical literal layouts for the temporal variants.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339
)

// Value is the sealed interface over converted field values. Only Text,
// Bool, Decimal, Date, and DateTime implement it. String returns the
// canonical literal form, suitable for re-parsing by the converter that
// produced the value.
type Value interface {
	fieldValue()
	String() string
}

// Text holds a field value stored as-is: the default for every type tag
// without a dedicated converter (text, picklist, reference, unknown tags).
type Text string

func (Text) fieldValue() {}

// String implements fmt.Stringer.
func (t Text) String() string { return string(t) }

// Bool holds a converted checkbox or boolean field value.
type Bool bool

func (Bool) fieldValue() {}

// String renders the canonical literal, "true" or "false".
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Decimal holds a converted currency or double field value as an exact
// decimal; no floating-point representation is involved at any point.
type Decimal struct {
	decimal.Decimal
}

func (Decimal) fieldValue() {}

// NewDecimal wraps a decimal in the value union.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// Date holds a converted calendar date with no time-of-day component.
type Date struct {
	t time.Time
}

func (Date) fieldValue() {}

// NewDate builds a Date from the year, month, and day of t, discarding
// clock and zone.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// String renders the canonical literal, e.g. "2024-01-15".
func (d Date) String() string { return d.t.Format(DateLayout) }

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time { return d.t }

// DateTime holds a converted combined date and time.
type DateTime struct {
	t time.Time
}

func (DateTime) fieldValue() {}

// NewDateTime builds a DateTime from t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t}
}

// String renders the canonical RFC 3339 literal.
func (d DateTime) String() string { return d.t.Format(DateTimeLayout) }

// Time returns the underlying instant.
func (d DateTime) Time() time.Time { return d.t }

// Equal compares two values semantically: decimals by numeric value
// rather than representation, temporal values by instant. Values of
// different variants are never equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Decimal:
		bv, ok := b.(Decimal)
		return ok && av.Decimal.Equal(bv.Decimal)
	case Date:
		bv, ok := b.(Date)
		return ok && av.t.Equal(bv.t)
	case DateTime:
		bv, ok := b.(DateTime)
		return ok && av.t.Equal(bv.t)
	default:
		return false
	}
}
