package cash

import (
	"fmt"
	"math"
	"strings"
)

// ChangeSolution is the result of the greedy change maker.
// It lists the denominations used, with their quantities, and the part of
// the amount that could not be represented by the denominations.
// ChangeSolution is immutable.
type ChangeSolution struct {
	amount    Amount
	parts     []QuantifiedDenomination // in descending order of denominations
	remainder Amount
}

// Amount returns the amount the change was made for.
func (s ChangeSolution) Amount() Amount {
	return s.amount
}

// Parts returns a copy of the denominations used, largest first.
func (s ChangeSolution) Parts() []QuantifiedDenomination {
	parts := make([]QuantifiedDenomination, len(s.parts))
	copy(parts, s.parts)
	return parts
}

// Remainder returns the part of the amount left after the greedy change
// maker exhausted all denominations.
func (s ChangeSolution) Remainder() Amount {
	return s.remainder
}

// IsSolution returns true if at least one denomination was used.
func (s ChangeSolution) IsSolution() bool {
	return len(s.parts) > 0
}

// IsPartial returns true if a non-zero remainder is left that none of the
// denominations fits into, whether or not any denomination was used.
func (s ChangeSolution) IsPartial() bool {
	return !s.remainder.IsZero()
}

// TotalCount returns the total number of pieces used.
func (s ChangeSolution) TotalCount() int {
	return totalCount(s.parts)
}

// String implements the [fmt.Stringer] interface, for example
// "USD 30.00 = [25 x 1 1 x 5] + USD 0.00".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s ChangeSolution) String() string {
	return s.amount.String() + " = " + formatParts(s.parts) + " + " + s.remainder.String()
}

func formatParts(parts []QuantifiedDenomination) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}

// GreedyChangeMaker makes change by repeatedly taking the largest
// denomination that still fits into the amount.
//
// The greedy approach is fast, but it does not always use the smallest
// number of pieces.
// For example, with denominations 25, 15 and 1 it represents 30 as
// 25 + 5 * 1 (6 pieces), while 15 + 15 (2 pieces) would suffice.
// Use [OptimalChangeMaker] when the piece count matters.
type GreedyChangeMaker struct{}

// MakeChange is a shorthand for [GreedyChangeMaker.Solve].
func MakeChange(a Amount, ds ...Denomination) (ChangeSolution, error) {
	return GreedyChangeMaker{}.Solve(a, ds...)
}

// Solve makes change for amount a using denominations ds.
// The order and duplicates of ds do not matter.
// When no combination of the denominations matches a exactly, the solution
// reports the leftover in [ChangeSolution.Remainder].
//
// Solve returns an error if a is not positive or any denomination is not positive.
func (GreedyChangeMaker) Solve(a Amount, ds ...Denomination) (ChangeSolution, error) {
	s, err := makeChange(a, ds)
	if err != nil {
		return ChangeSolution{}, fmt.Errorf("making change for %v: %w", a, err)
	}
	return s, nil
}

func makeChange(a Amount, ds []Denomination) (ChangeSolution, error) {
	if !a.IsPos() {
		return ChangeSolution{}, fmt.Errorf("amount must be positive: %w", errOutOfRange)
	}
	ds, err := normalizeDenoms(ds)
	if err != nil {
		return ChangeSolution{}, err
	}

	rem := a.Decimal()
	var parts []QuantifiedDenomination
	for _, d := range ds {
		if rem.Cmp(d.Decimal()) < 0 {
			continue
		}
		q, r, err := rem.QuoRem(d.Decimal())
		if err != nil {
			return ChangeSolution{}, err
		}
		n, _, ok := q.Int64(0)
		if !ok || n > math.MaxInt32 {
			return ChangeSolution{}, fmt.Errorf("quantity of %v: %w", d, errAmountOverflow)
		}
		parts = append(parts, QuantifiedDenomination{Denomination: d, Quantity: int(n)})
		rem = r
	}

	remainder, err := newAmountSafe(a.Curr(), rem)
	if err != nil {
		return ChangeSolution{}, err
	}
	return ChangeSolution{amount: a, parts: parts, remainder: remainder}, nil
}
