package cash

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// DefaultMaxUnits is the largest amount, expressed in integer units of the
// finest scale among the amount and the denominations, that
// [OptimalChangeMaker] accepts when its MaxUnits field is zero.
// For US Dollar cents, this is 10,000.00.
// The dynamic programming tables take about 8 bytes per unit.
const DefaultMaxUnits = 1_000_000

// OptimalChangeSolution is the result of the optimal change maker.
// It is either an exact representation of the amount with the smallest
// possible number of pieces, or empty if no exact representation exists.
// OptimalChangeSolution is immutable.
type OptimalChangeSolution struct {
	amount decimal.Decimal
	parts  []QuantifiedDenomination // in descending order of denominations
}

// Amount returns the amount the change was made for.
func (s OptimalChangeSolution) Amount() decimal.Decimal {
	return s.amount
}

// Parts returns a copy of the denominations used, largest first.
// Parts is empty if there is no solution.
func (s OptimalChangeSolution) Parts() []QuantifiedDenomination {
	parts := make([]QuantifiedDenomination, len(s.parts))
	copy(parts, s.parts)
	return parts
}

// IsSolution returns true if the amount is exactly expressible with the
// denominations.
func (s OptimalChangeSolution) IsSolution() bool {
	return len(s.parts) > 0
}

// TotalCount returns the total number of pieces used.
func (s OptimalChangeSolution) TotalCount() int {
	return totalCount(s.parts)
}

// String implements the [fmt.Stringer] interface, for example "30 = [15 x 2]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s OptimalChangeSolution) String() string {
	return s.amount.String() + " = " + formatParts(s.parts)
}

// OptimalChangeMaker finds the representation of an amount that uses the
// smallest number of pieces, using dynamic programming over integer units.
// Time is proportional to units * len(denominations), memory to units.
type OptimalChangeMaker struct {
	// MaxUnits limits the size of the amount in integer units.
	// Zero means DefaultMaxUnits.
	MaxUnits int
}

// MakeOptimalChange is a shorthand for [OptimalChangeMaker.Solve] with the
// default limit.
func MakeOptimalChange(amount decimal.Decimal, ds ...Denomination) (OptimalChangeSolution, error) {
	return OptimalChangeMaker{}.Solve(amount, ds...)
}

// OptimalChange is a shorthand for [MakeOptimalChange] with the value of amount a.
func (a Amount) OptimalChange(ds ...Denomination) (OptimalChangeSolution, error) {
	return MakeOptimalChange(a.Decimal(), ds...)
}

// Solve makes change for the amount using the smallest number of pieces of
// denominations ds.
// The order and duplicates of ds do not matter.
// If the amount cannot be represented exactly, Solve returns an empty
// solution and no error; there are no approximate optimal solutions.
// Among solutions with the same number of pieces, the one whose last piece
// is the smallest possible denomination is returned.
//
// Solve returns an error if:
//   - the amount is not positive;
//   - any denomination is not positive;
//   - the amount exceeds the MaxUnits limit.
func (m OptimalChangeMaker) Solve(amount decimal.Decimal, ds ...Denomination) (OptimalChangeSolution, error) {
	s, err := m.solve(amount, ds)
	if err != nil {
		return OptimalChangeSolution{}, fmt.Errorf("making optimal change for %v: %w", amount, err)
	}
	return s, nil
}

func (m OptimalChangeMaker) maxUnits() int {
	if m.MaxUnits <= 0 {
		return DefaultMaxUnits
	}
	return m.MaxUnits
}

func (m OptimalChangeMaker) solve(amount decimal.Decimal, ds []Denomination) (OptimalChangeSolution, error) {
	if !amount.IsPos() {
		return OptimalChangeSolution{}, fmt.Errorf("amount must be positive: %w", errOutOfRange)
	}
	ds, err := normalizeDenoms(ds)
	if err != nil {
		return OptimalChangeSolution{}, err
	}
	empty := OptimalChangeSolution{amount: amount}
	for len(ds) > 0 && ds[0].Decimal().Cmp(amount) > 0 {
		ds = ds[1:]
	}
	if len(ds) == 0 {
		return empty, nil
	}

	// Integer units, only denominations not greater than the amount count
	scale := amount.MinScale()
	for _, d := range ds {
		scale = max(scale, d.Decimal().MinScale())
	}
	limit := m.maxUnits()
	total, err := toUnits(amount, scale, limit)
	if err != nil {
		return OptimalChangeSolution{}, err
	}
	// Ascending order makes the choice among equal counts deterministic.
	var units []int
	var denoms []Denomination
	for i := len(ds) - 1; i >= 0; i-- {
		u, err := toUnits(ds[i].Decimal(), scale, total)
		if err != nil {
			return OptimalChangeSolution{}, err
		}
		units = append(units, u)
		denoms = append(denoms, ds[i])
	}
	quantities := minCoins(total, units)
	if quantities == nil {
		return empty, nil
	}
	var parts []QuantifiedDenomination
	for i := len(denoms) - 1; i >= 0; i-- {
		if quantities[i] > 0 {
			parts = append(parts, QuantifiedDenomination{Denomination: denoms[i], Quantity: quantities[i]})
		}
	}
	return OptimalChangeSolution{amount: amount, parts: parts}, nil
}

// toUnits returns d * 10^scale as an integer not greater than limit.
// The scale must not be smaller than the minimal scale of d.
func toUnits(d decimal.Decimal, scale, limit int) (int, error) {
	e := d.Trim(scale).Pad(scale)
	if e.Scale() != scale {
		return 0, fmt.Errorf("scaling %v to %v digits: %w", d, scale, errAmountOverflow)
	}
	u := e.Coef()
	if u > uint64(limit) { //nolint:gosec
		return 0, fmt.Errorf("%v is %v units at scale %v, limit is %v: %w", d, u, scale, limit, errOutOfRange)
	}
	return int(u), nil //nolint:gosec
}

// minCoins solves the minimum coin change problem for total using coins of
// the given ascending unit values, and returns the quantity of every coin.
// It returns nil if total cannot be represented exactly.
func minCoins(total int, units []int) []int {
	const unreachable = math.MaxInt32
	count := make([]int32, total+1)
	last := make([]int32, total+1) // index of the coin added last
	for k := 1; k <= total; k++ {
		best, coin := int32(unreachable), int32(-1)
		for j, u := range units {
			if u > k {
				break
			}
			if c := count[k-u]; c != unreachable && c+1 < best {
				best, coin = c+1, int32(j) //nolint:gosec
			}
		}
		count[k], last[k] = best, coin
	}
	if count[total] == unreachable {
		return nil
	}
	quantities := make([]int, len(units))
	for k := total; k > 0; k -= units[last[k]] {
		quantities[last[k]]++
	}
	return quantities
}

