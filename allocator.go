package cash

import (
	"fmt"

	"github.com/govalues/decimal"
)

// AllocateEven splits amount a into n nominally equal shares.
// Every share is the quotient a / n truncated to the scale of the currency,
// so the shares never sum up to more than a.
// The difference between a and the sum of the shares is left in the
// remainder of the allocation, and it is always smaller than n minor units.
// Use a [RemainderAllocator] to distribute it.
//
// If a is smaller than the minor unit of its currency, all shares are zero
// and the allocation is quasi-complete.
//
// AllocateEven returns an error if n is not positive.
func AllocateEven(a Amount, n int) (Allocation, error) {
	r, err := allocateEven(a, n, a.Curr().Scale())
	if err != nil {
		return Allocation{}, fmt.Errorf("allocating %v into %v parts: %w", a, n, err)
	}
	return r, nil
}

func allocateEven(a Amount, n, scale int) (Allocation, error) {
	if n < 1 {
		return Allocation{}, fmt.Errorf("number of parts must be positive: %w", errOutOfRange)
	}
	par, err := decimal.New(int64(n), 0)
	if err != nil {
		return Allocation{}, err
	}

	// Quotient
	q, err := a.Decimal().QuoExact(par, scale)
	if err != nil {
		return Allocation{}, err
	}
	share := newAmountUnsafe(a.Curr(), q.Trunc(scale).Pad(scale))

	shares := make([]Amount, n)
	for i := range shares {
		shares[i] = share
	}
	shares, err = trimExcess(a, shares, scale)
	if err != nil {
		return Allocation{}, err
	}
	return newAllocation(a, shares)
}

// AllocateProRata splits amount a into shares proportional to the ratios.
// Every share is the product a * ratio truncated to the scale of the currency,
// so the shares never sum up to more than a.
// The allocation has exactly r.Len() shares, in the order of the ratios.
// Use a [RemainderAllocator] to distribute the remainder.
//
// AllocateProRata returns an error if the collection of ratios is empty.
func AllocateProRata(a Amount, r Ratios) (Allocation, error) {
	res, err := allocateProRata(a, r)
	if err != nil {
		return Allocation{}, fmt.Errorf("allocating %v pro rata %v: %w", a, r.values, err)
	}
	return res, nil
}

func allocateProRata(a Amount, r Ratios) (Allocation, error) {
	if r.Len() == 0 {
		return Allocation{}, fmt.Errorf("ratios must not be empty: %w", errOutOfRange)
	}
	c, scale := a.Curr(), a.Curr().Scale()
	shares := make([]Amount, r.Len())
	for i, ratio := range r.values {
		d, err := a.Decimal().MulExact(ratio.Decimal(), scale)
		if err != nil {
			return Allocation{}, err
		}
		shares[i] = newAmountUnsafe(c, d.Trunc(scale).Pad(scale))
	}
	shares, err := trimExcess(a, shares, scale)
	if err != nil {
		return Allocation{}, err
	}
	return newAllocation(a, shares)
}

// trimExcess takes one unit of the given scale back from the last shares
// while the shares sum up to more than a in absolute value.
// Truncated shares can only exceed a when the decimal arithmetic had to round
// an intermediate result with more than [decimal.MaxPrec] digits.
func trimExcess(a Amount, shares []Amount, scale int) ([]Amount, error) {
	total, err := sum(a.Curr(), shares)
	if err != nil {
		return nil, err
	}
	unit := newAmountUnsafe(a.Curr(), decimal.MustNew(1, scale))
	if a.IsNeg() {
		unit = unit.Neg()
	}
	for i := len(shares) - 1; i >= 0 && total.Decimal().CmpAbs(a.Decimal()) > 0; i-- {
		if shares[i].IsZero() {
			continue
		}
		if shares[i], err = shares[i].sub(unit); err != nil {
			return nil, err
		}
		if total, err = total.sub(unit); err != nil {
			return nil, err
		}
	}
	return shares, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// The amount is divided at its own scale, which may be greater than the
// scale of its currency, and the remainder is distributed among the first
// parts of the slice.
// See also [AllocateEven] and [FirstToLast], which work at the scale of the
// currency and report the remainder explicitly.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	scale := a.Scale()
	r, err := allocateEven(a, parts, scale)
	if err != nil {
		return nil, err
	}
	r, err = distribute(r, decimal.MustNew(1, scale), firstToLast, true)
	if err != nil {
		return nil, err
	}
	return r.shares, nil
}
