package cash

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX
// indicates an unknown currency.
// ExchangeRate is immutable and safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // units of quote currency per 1 unit of base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - the currencies are the same and the rate is not 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v must be positive: %w", rate, errOutOfRange)
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v must be equal to 1: %w", base, quote, errOutOfRange)
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [NewExchRate].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing quote currency: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	return NewExchRate(b, q, d)
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings
// cannot be parsed.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the decimal representation of the exchange rate.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert amount b.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr() == r.Base() && r.value.IsPos()
}

// Conv returns amount b converted from the base currency to the quote
// currency, keeping at least the scale of the quote currency.
//
// Conv returns an error if:
//   - b is not denominated in the base currency;
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	c, err := r.conv(b)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] at [%v]: %w", b, r, err)
	}
	return c, nil
}

func (r ExchangeRate) conv(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, errCurrencyMismatch
	}
	d, err := b.Decimal().MulExact(r.value, r.Quote().Scale())
	if err != nil {
		return Amount{}, err
	}
	return newAmountSafe(r.Quote(), d)
}

// Inv returns the inverse of the exchange rate.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d, err := decimal.One.Quo(r.value)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting [%v]: %w", r, err)
	}
	return NewExchRate(r.Quote(), r.Base(), d)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "EUR/USD 1.2500".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().String() + "/" + r.Quote().String() + " " + r.value.String()
}
