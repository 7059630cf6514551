package cash

import (
	"fmt"
	"strings"
)

// Allocation is the result of splitting an amount across several recipients.
// It holds the amount being allocated, one share per recipient, and the
// derived total and remainder.
//
// Allocation is immutable: remainder allocators return a new Allocation
// rather than modifying the one they are given, so allocations can be shared
// between goroutines.
type Allocation struct {
	amount    Amount   // amount being allocated
	shares    []Amount // one share per recipient
	total     Amount   // sum of shares
	remainder Amount   // amount - total
}

// NewAllocation returns an allocation of amount a into the given shares.
// The shares are copied.
//
// NewAllocation returns an error if:
//   - there are no shares;
//   - any share is denominated in a currency other than the currency of a;
//   - the sum of the shares overflows.
func NewAllocation(a Amount, shares ...Amount) (Allocation, error) {
	r, err := newAllocation(a, shares)
	if err != nil {
		return Allocation{}, fmt.Errorf("allocating %v: %w", a, err)
	}
	return r, nil
}

func newAllocation(a Amount, shares []Amount) (Allocation, error) {
	if len(shares) == 0 {
		return Allocation{}, fmt.Errorf("number of shares must be positive: %w", errOutOfRange)
	}
	for _, s := range shares {
		if !a.SameCurr(s) {
			return Allocation{}, fmt.Errorf("share %v: %w", s, errCurrencyMismatch)
		}
	}
	total, err := sum(a.Curr(), shares)
	if err != nil {
		return Allocation{}, err
	}
	rem, err := a.sub(total)
	if err != nil {
		return Allocation{}, err
	}
	own := make([]Amount, len(shares))
	copy(own, shares)
	return Allocation{amount: a, shares: own, total: total, remainder: rem}, nil
}

// Amount returns the amount being allocated.
func (r Allocation) Amount() Amount {
	return r.amount
}

// Len returns the number of recipients.
func (r Allocation) Len() int {
	return len(r.shares)
}

// Share returns the share of the i-th recipient.
// Share panics if i is out of range.
func (r Allocation) Share(i int) Amount {
	return r.shares[i]
}

// Shares returns a copy of the shares.
func (r Allocation) Shares() []Amount {
	shares := make([]Amount, len(r.shares))
	copy(shares, r.shares)
	return shares
}

// Total returns the sum of the shares.
func (r Allocation) Total() Amount {
	return r.total
}

// Remainder returns the part of the amount that has not been allocated.
func (r Allocation) Remainder() Amount {
	return r.remainder
}

// IsComplete returns true if the whole amount has been allocated.
func (r Allocation) IsComplete() bool {
	return r.remainder.IsZero()
}

// IsQuasiComplete returns true if the remainder is not zero but smaller than
// the minor unit of the currency, so it cannot be allocated any further.
func (r Allocation) IsQuasiComplete() bool {
	if r.remainder.IsZero() {
		return false
	}
	return r.remainder.Decimal().CmpAbs(r.amount.Curr().MinUnit()) < 0
}

// String implements the [fmt.Stringer] interface, for example
// "USD 8.30 = [USD 2.07 USD 2.07 USD 2.07 USD 2.07] + USD 0.02".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Allocation) String() string {
	var b strings.Builder
	b.WriteString(r.amount.String())
	b.WriteString(" = [")
	for i, s := range r.shares {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	b.WriteString("] + ")
	b.WriteString(r.remainder.String())
	return b.String()
}
