package cash

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into in-memory tables that
// hold properties defined by [ISO 4217], such as code and scale.
// Currency values are therefore safe to share between goroutines.
//
// Persist the alphabetic code returned by [Currency.Code], not the index:
// the mapping between index and currency may change when the table is
// regenerated.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

var errInvalidCurrency = errors.New("invalid currency")

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a known currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("%w: %q", errInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// Scale returns the number of significant decimal digits of the currency,
// that is, the number of digits after the decimal point of its minor unit.
// For example, the scale is 0 for the Japanese Yen, 2 for the US Dollar,
// and 3 for the Omani Rial.
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// MinUnit returns the smallest amount representable in the currency,
// equal to 10^-[Currency.Scale].
// For example, it is 0.01 for the US Dollar and 1 for the Japanese Yen.
func (c Currency) MinUnit() decimal.Decimal {
	return decimal.MustNew(1, c.Scale())
}

// Num returns the 3-digit code assigned to the currency by ISO 4217.
func (c Currency) Num() string {
	return numLookup[c]
}

// Code returns the 3-letter code assigned to the currency by ISO 4217.
// This method always returns a valid code.
func (c Currency) Code() string {
	return codeLookup[c]
}

// String implements the [fmt.Stringer] interface and returns the 3-letter code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}
