package cash

import (
	"encoding/json"
	"testing"

	"github.com/govalues/decimal"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"392", JPY},
			{"jpy", JPY},
			{"JPY", JPY},
			{"840", USD},
			{"usd", USD},
			{"USD", USD},
			{"512", OMR},
			{"omr", OMR},
			{"OMR", OMR},
			{"036", AUD},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "AU$", "BTC", "Usd",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{JPY, 0},
		{KRW, 0},
		{AED, 2},
		{EUR, 2},
		{USD, 2},
		{OMR, 3},
		{IQD, 3},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_MinUnit(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "1"},
		{JPY, "1"},
		{USD, "0.01"},
		{OMR, "0.001"},
	}
	for _, tt := range tests {
		got := tt.curr.MinUnit()
		want := decimal.MustParse(tt.want)
		if got != want {
			t.Errorf("%v.MinUnit() = %v, want %v", tt.curr, got, want)
		}
	}
}

func TestCurrency_Num(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "999"},
		{JPY, "392"},
		{USD, "840"},
		{OMR, "512"},
	}
	for _, tt := range tests {
		got := tt.curr.Num()
		if got != tt.want {
			t.Errorf("%v.Num() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{JPY, "JPY"},
		{USD, "USD"},
		{OMR, "OMR"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %v, want %v", tt.curr, got, tt.want)
		}
		if s := tt.curr.String(); s != tt.want {
			t.Errorf("%v.String() = %v, want %v", tt.curr, s, tt.want)
		}
	}
}

func TestCurrency_Tables(t *testing.T) {
	for code, c := range currLookup {
		if c.Code() != code && c.Num() != code && c.Code() != upper(code) {
			t.Errorf("currLookup[%q] = %v, which has code %q and number %q", code, c, c.Code(), c.Num())
		}
	}
	if len(codeLookup) != len(scaleLookup) || len(codeLookup) != len(numLookup) {
		t.Errorf("lookup tables differ in length: %v, %v, %v", len(codeLookup), len(scaleLookup), len(numLookup))
	}
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func TestCurrency_Text(t *testing.T) {
	type payload struct {
		Curr Currency `json:"curr"`
	}

	t.Run("success", func(t *testing.T) {
		data, err := json.Marshal(payload{Curr: OMR})
		if err != nil {
			t.Fatalf("json.Marshal(OMR) failed: %v", err)
		}
		if got, want := string(data), `{"curr":"OMR"}`; got != want {
			t.Errorf("json.Marshal(OMR) = %v, want %v", got, want)
		}
		var p payload
		if err := json.Unmarshal([]byte(`{"curr":"jpy"}`), &p); err != nil {
			t.Fatalf("json.Unmarshal(jpy) failed: %v", err)
		}
		if p.Curr != JPY {
			t.Errorf("json.Unmarshal(jpy) = %v, want %v", p.Curr, JPY)
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		if err := c.UnmarshalText([]byte("UUU")); err == nil {
			t.Errorf("UnmarshalText(\"UUU\") did not fail")
		}
	})
}
