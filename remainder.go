package cash

import (
	"fmt"
	"math/rand/v2"

	"github.com/govalues/decimal"
)

// RemainderAllocator distributes the remainder of an allocation among its
// recipients, one minor unit of the currency at a time, until the remainder
// is zero or smaller than the minor unit.
//
// Complete never modifies its argument and returns a new allocation.
// An error is returned only if the arithmetic overflows; a policy that stops
// early is visible through [Allocation.IsComplete] and
// [Allocation.IsQuasiComplete] of the result.
//
// [FirstToLast] and [LastToFirst] hand out whole rounds of minor units at
// once and take at most one step per recipient. [RandomRemainder] and
// [CustomRemainder] take one step per minor unit of the remainder, so their
// cost grows with the remainder rather than with the number of recipients.
type RemainderAllocator interface {
	Complete(r Allocation) (Allocation, error)
}

// picker returns the index of the recipient of the next minor unit,
// given the number of recipients and the zero-based step.
type picker func(n, step int) int

func firstToLast(n, step int) int {
	return step % n
}

func lastToFirst(n, step int) int {
	return n - 1 - step%n
}

// orderedRemainder hands out minor units in a fixed order.
type orderedRemainder struct {
	name string
	pick picker
}

var (
	// FirstToLast gives one minor unit to each recipient starting from the
	// first one, wrapping around if needed.
	FirstToLast RemainderAllocator = orderedRemainder{name: "first-to-last", pick: firstToLast}

	// LastToFirst gives one minor unit to each recipient starting from the
	// last one, wrapping around if needed.
	LastToFirst RemainderAllocator = orderedRemainder{name: "last-to-first", pick: lastToFirst}
)

func (o orderedRemainder) Complete(r Allocation) (Allocation, error) {
	return complete(o.name, r, o.pick, true)
}

func (o orderedRemainder) String() string {
	return o.name
}

// RandomRemainder gives every minor unit to a uniformly chosen recipient.
// A recipient may receive several units.
// RandomRemainder owns its random generator and is not safe for concurrent use.
type RandomRemainder struct {
	rng *rand.Rand
}

// NewRandomRemainder returns a random remainder allocator drawing from src.
// Pass a seeded source, such as [rand.NewPCG], for reproducible results.
// If src is nil, a source with a random seed is used.
func NewRandomRemainder(src rand.Source) *RandomRemainder {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint:gosec
	}
	return &RandomRemainder{rng: rand.New(src)} //nolint:gosec
}

func (rr *RandomRemainder) Complete(r Allocation) (Allocation, error) {
	return complete("random", r, func(n, _ int) int { return rr.rng.IntN(n) }, false)
}

func (rr *RandomRemainder) String() string {
	return "random"
}

// CustomRemainder delegates the choice of recipients to a caller-supplied
// function.
// The function receives the number of recipients and the zero-based step,
// and returns the index of the recipient of the next minor unit.
// Returning an index outside [0, n) stops the distribution, leaving the
// rest of the remainder unallocated.
type CustomRemainder struct {
	pick picker
}

// NewCustomRemainder returns a remainder allocator using the pick function.
func NewCustomRemainder(pick func(n, step int) int) CustomRemainder {
	return CustomRemainder{pick: pick}
}

func (cr CustomRemainder) Complete(r Allocation) (Allocation, error) {
	if cr.pick == nil {
		return r, nil
	}
	return complete("custom", r, cr.pick, false)
}

func (cr CustomRemainder) String() string {
	return "custom"
}

func complete(name string, r Allocation, pick picker, rounds bool) (Allocation, error) {
	res, err := distribute(r, r.amount.Curr().MinUnit(), pick, rounds)
	if err != nil {
		return Allocation{}, fmt.Errorf("distributing remainder %v %v: %w", r.remainder, name, err)
	}
	return res, nil
}

// distribute moves the remainder of r to the shares picked by pick, one unit
// at a time, while the remainder is at least one unit in absolute value.
// If rounds is true, pick must cycle through all n shares every n steps,
// and every share first receives the units of the complete rounds at once.
func distribute(r Allocation, unit decimal.Decimal, pick picker, rounds bool) (Allocation, error) {
	rem := r.remainder
	if len(r.shares) == 0 || rem.Decimal().CmpAbs(unit) < 0 {
		return r, nil
	}
	if rem.IsNeg() {
		unit = unit.Neg()
	}
	u := newAmountUnsafe(rem.Curr(), unit)
	n := len(r.shares)
	shares := r.Shares()
	if rounds {
		var err error
		if rem, err = distributeRounds(shares, rem, unit); err != nil {
			return Allocation{}, err
		}
	}
	for step := 0; rem.Decimal().CmpAbs(unit) >= 0; step++ {
		i := pick(n, step)
		if i < 0 || i >= n {
			break
		}
		var err error
		if shares[i], err = shares[i].add(u); err != nil {
			return Allocation{}, err
		}
		if rem, err = rem.sub(u); err != nil {
			return Allocation{}, err
		}
	}
	return newAllocation(r.amount, shares)
}

// distributeRounds adds floor(rem / (n * unit)) units to each of the n shares
// in place and returns what is left of rem, less than n units.
func distributeRounds(shares []Amount, rem Amount, unit decimal.Decimal) (Amount, error) {
	n := decimal.MustNew(int64(len(shares)), 0)
	units, _, err := rem.Decimal().QuoRem(unit)
	if err != nil {
		return Amount{}, err
	}
	k, _, err := units.QuoRem(n)
	if err != nil {
		return Amount{}, err
	}
	if k.IsZero() {
		return rem, nil
	}
	inc, err := unit.Mul(k)
	if err != nil {
		return Amount{}, err
	}
	total, err := inc.Mul(n)
	if err != nil {
		return Amount{}, err
	}
	for i := range shares {
		if shares[i], err = shares[i].add(newAmountUnsafe(rem.Curr(), inc)); err != nil {
			return Amount{}, err
		}
	}
	return rem.sub(newAmountUnsafe(rem.Curr(), total))
}
