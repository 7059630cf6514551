package cash

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Ratio represents a proportion within the range [0, 1] used as a weight
// in pro-rata allocations.
// The zero value corresponds to a ratio of 0.
// Ratio is immutable and safe for concurrent use by multiple goroutines.
type Ratio struct {
	value decimal.Decimal
}

// NewRatio returns a ratio equal to the given decimal.
// NewRatio returns an error if the decimal is outside the range [0, 1].
func NewRatio(d decimal.Decimal) (Ratio, error) {
	if d.IsNeg() || d.Cmp(decimal.One) > 0 {
		return Ratio{}, fmt.Errorf("ratio %v must be within [0, 1]: %w", d, errOutOfRange)
	}
	return Ratio{value: d}, nil
}

// ParseRatio converts a decimal string to a ratio.
func ParseRatio(s string) (Ratio, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Ratio{}, fmt.Errorf("parsing ratio: %w", err)
	}
	return NewRatio(d)
}

// MustParseRatio is like [ParseRatio] but panics if the string cannot be parsed.
func MustParseRatio(s string) Ratio {
	r, err := ParseRatio(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRatio(%q) failed: %v", s, err))
	}
	return r
}

// Decimal returns the decimal representation of the ratio.
func (r Ratio) Decimal() decimal.Decimal {
	return r.value
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio) String() string {
	return r.value.String()
}

// Ratios is an ordered, immutable collection of ratios that sum up to exactly 1.
// The zero value is an empty collection and cannot be used for allocation.
type Ratios struct {
	values []Ratio
}

// NewRatios returns a collection of the given ratios.
// NewRatios returns an error if the collection is empty or if the ratios
// do not sum up to exactly 1.
func NewRatios(rs ...Ratio) (Ratios, error) {
	if len(rs) == 0 {
		return Ratios{}, fmt.Errorf("ratios must not be empty: %w", errOutOfRange)
	}
	total := decimal.Zero
	for _, r := range rs {
		var err error
		total, err = total.Add(r.Decimal())
		if err != nil {
			return Ratios{}, fmt.Errorf("summing ratios: %w", err)
		}
	}
	if total.Cmp(decimal.One) != 0 {
		return Ratios{}, fmt.Errorf("ratios must sum to 1, got %v: %w", total, errOutOfRange)
	}
	values := make([]Ratio, len(rs))
	copy(values, rs)
	return Ratios{values: values}, nil
}

// NewRatiosFromDecimals is like [NewRatios] but accepts raw decimals.
// Every decimal is validated by [NewRatio] before the sum is checked.
func NewRatiosFromDecimals(ds ...decimal.Decimal) (Ratios, error) {
	rs := make([]Ratio, len(ds))
	for i, d := range ds {
		r, err := NewRatio(d)
		if err != nil {
			return Ratios{}, fmt.Errorf("ratio #%v: %w", i, err)
		}
		rs[i] = r
	}
	return NewRatios(rs...)
}

// ParseRatios converts decimal strings to a collection of ratios.
func ParseRatios(ss ...string) (Ratios, error) {
	rs := make([]Ratio, len(ss))
	for i, s := range ss {
		r, err := ParseRatio(s)
		if err != nil {
			return Ratios{}, fmt.Errorf("ratio #%v: %w", i, err)
		}
		rs[i] = r
	}
	return NewRatios(rs...)
}

// MustParseRatios is like [ParseRatios] but panics if the ratios are invalid.
func MustParseRatios(ss ...string) Ratios {
	r, err := ParseRatios(ss...)
	if err != nil {
		panic(fmt.Sprintf("ParseRatios(%q) failed: %v", ss, err))
	}
	return r
}

// Len returns the number of ratios in the collection.
func (r Ratios) Len() int {
	return len(r.values)
}

// At returns the i-th ratio.
// At panics if i is out of range.
func (r Ratios) At(i int) Ratio {
	return r.values[i]
}

// Values returns a copy of the ratios.
func (r Ratios) Values() []Ratio {
	values := make([]Ratio, len(r.values))
	copy(values, r.values)
	return values
}
