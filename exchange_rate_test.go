package cash

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	if got.Base() != XXX {
		t.Errorf("ExchangeRate{}.Base() = %v, want %v", got.Base(), XXX)
	}
	if got.Quote() != XXX {
		t.Errorf("ExchangeRate{}.Quote() = %v, want %v", got.Quote(), XXX)
	}
	if !got.Decimal().IsZero() {
		t.Errorf("ExchangeRate{}.Decimal() = %v, want 0", got.Decimal())
	}
	if got.CanConv(Amount{}) {
		t.Errorf("ExchangeRate{}.CanConv(%q) = true, want false", Amount{})
	}
}

func TestExchangeRate_Sizeof(t *testing.T) {
	r := ExchangeRate{}
	got := unsafe.Sizeof(r)
	want := uintptr(24)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", r, got, want)
	}
}

func TestNewExchRate(t *testing.T) {
	tests := []struct {
		base, quote Currency
		rate        string
		wantOk      bool
	}{
		{USD, EUR, "1.2000", true},
		{USD, JPY, "132", true},
		{USD, EUR, "0.0001", true},
		{USD, EUR, "-1.2000", false},
		{USD, EUR, "0", false},
		{USD, USD, "0.9999", false},
		{USD, USD, "1.0000", true},
		{USD, USD, "1.0001", false},
	}
	for _, tt := range tests {
		rate := decimal.MustParse(tt.rate)
		_, err := NewExchRate(tt.base, tt.quote, rate)
		if !tt.wantOk && !errors.Is(err, errOutOfRange) {
			t.Errorf("NewExchRate(%v, %v, %v) = %v, want %v", tt.base, tt.quote, rate, err, errOutOfRange)
		}
		if tt.wantOk && err != nil {
			t.Errorf("NewExchRate(%v, %v, %v) failed: %v", tt.base, tt.quote, rate, err)
		}
	}
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote, rate   string
			wantBase, wantQuote Currency
			wantRate            string
		}{
			{"USD", "JPY", "132", USD, JPY, "132"},
			{"usd", "eur", "1.2", USD, EUR, "1.2"},
			{"840", "512", "0.38", USD, OMR, "0.38"},
		}
		for _, tt := range tests {
			got, err := ParseExchRate(tt.base, tt.quote, tt.rate)
			if err != nil {
				t.Errorf("ParseExchRate(%q, %q, %q) failed: %v", tt.base, tt.quote, tt.rate, err)
				continue
			}
			want := MustParseExchRate(tt.wantBase.Code(), tt.wantQuote.Code(), tt.wantRate)
			if got != want {
				t.Errorf("ParseExchRate(%q, %q, %q) = %q, want %q", tt.base, tt.quote, tt.rate, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote, rate string
		}{
			"no data": {"", "", ""},
			"base 1":  {"AAA", "USD", "30000"},
			"quote 1": {"USD", "AAA", "0.00003"},
			"rate 1":  {"USD", "EUR", "x.0000"},
			"rate 2":  {"USD", "USD", "0.9999"},
			"rate 3":  {"USD", "EUR", "0.0"},
			"rate 4":  {"USD", "EUR", "-0.9999"},
		}
		for name, tt := range tests {
			_, err := ParseExchRate(tt.base, tt.quote, tt.rate)
			if err == nil {
				t.Errorf("%v: ParseExchRate(%q, %q, %q) did not fail", name, tt.base, tt.quote, tt.rate)
			}
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseExchRate(\"USD\", \"EUR\", \"0\") did not panic")
		}
	}()
	MustParseExchRate("USD", "EUR", "0")
}

func TestExchangeRate_Inv(t *testing.T) {
	tests := []struct {
		base, quote, rate, want string
	}{
		{"USD", "EUR", "0.5", "2"},
		{"EUR", "USD", "1.25", "0.8"},
		{"USD", "USD", "1", "1"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.base, tt.quote, tt.rate)
		got, err := r.Inv()
		if err != nil {
			t.Errorf("%q.Inv() failed: %v", r, err)
			continue
		}
		want := MustParseExchRate(tt.quote, tt.base, tt.want)
		if got.Base() != want.Base() || got.Quote() != want.Quote() || got.Decimal().Cmp(want.Decimal()) != 0 {
			t.Errorf("%q.Inv() = %q, want %q", r, got, want)
		}
	}
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, quote, rate, amount, want string
		}{
			{"JPY", "USD", "0.0075", "100", "0.7500"},
			{"EUR", "USD", "1.0995", "100.00", "109.950000"},
			{"OMR", "USD", "2.59765", "100.000", "259.76500000"},
			{"USD", "JPY", "132", "1.00", "132.00"},
			{"EUR", "USD", "1.25", "-2.00", "-2.5000"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.base, tt.quote, tt.rate)
			a := MustParseAmount(tt.base, tt.amount)
			got, err := r.Conv(a)
			if err != nil {
				t.Errorf("%q.Conv(%q) failed: %v", r, a, err)
				continue
			}
			want := MustParseAmount(tt.quote, tt.want)
			if got != want {
				t.Errorf("%q.Conv(%q) = %q, want %q", r, a, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, quote, rate, curr, amount string
			wantErr                         error
		}{
			"currency 1": {"USD", "EUR", "1.2000", "JPY", "100", errCurrencyMismatch},
			"currency 2": {"XXX", "EUR", "1.2000", "EUR", "100", errCurrencyMismatch},
			"overflow 1": {"USD", "JPY", "1000.00", "USD", "10000000000000000.00", nil},
			"overflow 2": {"USD", "EUR", "10.0000", "USD", "10000000000000000.00", nil},
		}
		for name, tt := range tests {
			r := MustParseExchRate(tt.base, tt.quote, tt.rate)
			a := MustParseAmount(tt.curr, tt.amount)
			_, err := r.Conv(a)
			if err == nil {
				t.Errorf("%v: %q.Conv(%q) did not fail", name, r, a)
				continue
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%v: %q.Conv(%q) = %v, want %v", name, r, a, err, tt.wantErr)
			}
		}
	})
}

func TestExchangeRate_String(t *testing.T) {
	tests := []struct {
		base, quote, rate, want string
	}{
		{"EUR", "USD", "1.2500", "EUR/USD 1.2500"},
		{"USD", "JPY", "132", "USD/JPY 132"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.base, tt.quote, tt.rate)
		if got := r.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.want, got, tt.want)
		}
	}
}
