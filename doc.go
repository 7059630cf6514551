/*
Package cash implements monetary amounts and two algorithms built on them:
loss-free allocation of an amount between recipients, and change making.
It leverages the [decimal] package for exact decimal arithmetic and
combines it with a [Currency] type describing ISO 4217 currencies.

# Features

  - Immutable monetary values, safe for concurrent use
  - Currency-aware arithmetic and comparison
  - Even and pro-rata allocation that never over-allocates
  - Pluggable distribution of allocation remainders
  - Optimal (minimum piece count) and greedy change making
  - Conversion of monetary values using exchange rates

# Representation

An [Amount] consists of a [Currency] and a decimal.Decimal value.
The Currency type is an integer index into in-memory tables holding the
code, the numeric code and the scale of every currency.
The minor unit of a currency, such as 0.01 for the US Dollar, is the
smallest amount that can be handed to a recipient.

# Allocation

[AllocateEven] and [AllocateProRata] split an amount into shares truncated
to the scale of its currency and return an [Allocation].
The allocation reports what is left over in [Allocation.Remainder].
A [RemainderAllocator], such as [FirstToLast], [LastToFirst], a
[RandomRemainder] or a [CustomRemainder], hands the remainder out one minor
unit at a time and returns a new allocation.
Whatever remains after that is smaller than the minor unit, and the
allocation is either complete or quasi-complete.

# Change Making

[OptimalChangeMaker] finds the smallest number of pieces that sum up to an
amount exactly, or returns an empty solution if there is none.
[GreedyChangeMaker] takes the largest denomination that fits, one after
another, and reports the leftover.
The greedy approach is faster but may use more pieces, so both are kept.

# Errors

Invalid arguments, such as a non-positive number of recipients, ratios
that do not sum up to 1, or amounts in different currencies, are reported
as errors.
Outcomes that are expected for valid arguments, such as an amount that
cannot be changed exactly or an allocation that cannot be completed, are
reported as data instead.
*/
package cash
