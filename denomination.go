package cash

import (
	"fmt"
	"slices"

	"github.com/govalues/decimal"
)

// Denomination represents the face value of a coin or a banknote.
// Its value is always positive, except for the zero value, which is not a
// valid denomination and is rejected by change makers.
type Denomination struct {
	value decimal.Decimal
}

// NewDenomination returns a denomination with the given face value.
// NewDenomination returns an error if the value is not positive.
func NewDenomination(d decimal.Decimal) (Denomination, error) {
	if !d.IsPos() {
		return Denomination{}, fmt.Errorf("denomination %v must be positive: %w", d, errOutOfRange)
	}
	return Denomination{value: d}, nil
}

// ParseDenomination converts a decimal string to a denomination.
func ParseDenomination(s string) (Denomination, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Denomination{}, fmt.Errorf("parsing denomination: %w", err)
	}
	return NewDenomination(d)
}

// MustParseDenomination is like [ParseDenomination] but panics if the string
// cannot be parsed.
func MustParseDenomination(s string) Denomination {
	d, err := ParseDenomination(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDenomination(%q) failed: %v", s, err))
	}
	return d
}

// ParseDenominations converts decimal strings to denominations.
func ParseDenominations(ss ...string) ([]Denomination, error) {
	ds := make([]Denomination, len(ss))
	for i, s := range ss {
		d, err := ParseDenomination(s)
		if err != nil {
			return nil, fmt.Errorf("denomination #%v: %w", i, err)
		}
		ds[i] = d
	}
	return ds, nil
}

// MustParseDenominations is like [ParseDenominations] but panics on error.
func MustParseDenominations(ss ...string) []Denomination {
	ds, err := ParseDenominations(ss...)
	if err != nil {
		panic(fmt.Sprintf("ParseDenominations(%q) failed: %v", ss, err))
	}
	return ds
}

// Decimal returns the face value of the denomination.
func (d Denomination) Decimal() decimal.Decimal {
	return d.value
}

// Cmp compares face values and returns -1, 0 or +1.
func (d Denomination) Cmp(e Denomination) int {
	return d.value.Cmp(e.value)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Denomination) String() string {
	return d.value.String()
}

// QuantifiedDenomination is a denomination together with the number of
// pieces of it used in a change solution.
type QuantifiedDenomination struct {
	Denomination Denomination
	Quantity     int
}

// Value returns the combined face value, denomination * quantity.
func (q QuantifiedDenomination) Value() (decimal.Decimal, error) {
	n, err := decimal.New(int64(q.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return q.Denomination.Decimal().Mul(n)
}

// String implements the [fmt.Stringer] interface, for example "15 x 2".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q QuantifiedDenomination) String() string {
	return fmt.Sprintf("%v x %v", q.Denomination, q.Quantity)
}

// normalizeDenoms validates denominations and returns them sorted in
// descending order, without numerically equal duplicates.
func normalizeDenoms(ds []Denomination) ([]Denomination, error) {
	res := make([]Denomination, 0, len(ds))
	for _, d := range ds {
		if !d.value.IsPos() {
			return nil, fmt.Errorf("denomination %v must be positive: %w", d, errOutOfRange)
		}
		res = append(res, d)
	}
	slices.SortStableFunc(res, func(a, b Denomination) int { return b.Cmp(a) })
	return slices.CompactFunc(res, func(a, b Denomination) bool { return a.Cmp(b) == 0 }), nil
}

// totalCount returns the number of pieces in parts.
func totalCount(parts []QuantifiedDenomination) int {
	n := 0
	for _, p := range parts {
		n += p.Quantity
	}
	return n
}
