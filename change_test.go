package cash

import (
	"errors"
	"fmt"
	"testing"
)

func TestGreedyChangeMaker_Solve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount  string
			denoms        []string
			want          string
			wantCount     int
			wantSolution  bool
			wantPartial   bool
			wantRemainder string
		}{
			{"USD", "30", []string{"1", "15", "25"}, "[25 x 1 1 x 5]", 6, true, false, "0.00"},
			{"USD", "30", []string{"25", "25", "15", "1", "1"}, "[25 x 1 1 x 5]", 6, true, false, "0.00"},
			{"USD", "0.30", []string{"0.25", "0.10"}, "[0.25 x 1]", 1, true, true, "0.05"},
			{"USD", "0.05", []string{"0.10"}, "[]", 0, false, true, "0.05"},
			{"USD", "0.05", []string{"0.10", "0.25"}, "[]", 0, false, true, "0.05"},
			{"USD", "2.40", []string{"1", "0.5", "0.2", "0.1"}, "[1 x 2 0.2 x 2]", 4, true, false, "0.00"},
			{"JPY", "7", []string{"4"}, "[4 x 1]", 1, true, true, "3"},
			{"JPY", "12000", []string{"10000", "5000", "1000"}, "[10000 x 1 1000 x 2]", 3, true, false, "0"},
			{"USD", "1", nil, "[]", 0, false, true, "1.00"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.curr, tt.amount)
			ds := MustParseDenominations(tt.denoms...)
			got, err := GreedyChangeMaker{}.Solve(a, ds...)
			if err != nil {
				t.Errorf("Solve(%q, %v) failed: %v", a, ds, err)
				continue
			}
			if s := formatParts(got.Parts()); s != tt.want {
				t.Errorf("Solve(%q, %v).Parts() = %v, want %v", a, ds, s, tt.want)
			}
			if got.TotalCount() != tt.wantCount {
				t.Errorf("Solve(%q, %v).TotalCount() = %v, want %v", a, ds, got.TotalCount(), tt.wantCount)
			}
			if got.IsSolution() != tt.wantSolution {
				t.Errorf("Solve(%q, %v).IsSolution() = %v, want %v", a, ds, got.IsSolution(), tt.wantSolution)
			}
			if got.IsPartial() != tt.wantPartial {
				t.Errorf("Solve(%q, %v).IsPartial() = %v, want %v", a, ds, got.IsPartial(), tt.wantPartial)
			}
			wantRem := MustParseAmount(tt.curr, tt.wantRemainder)
			if c, _ := got.Remainder().Cmp(wantRem); c != 0 {
				t.Errorf("Solve(%q, %v).Remainder() = %q, want %q", a, ds, got.Remainder(), wantRem)
			}
			if got.Amount() != a {
				t.Errorf("Solve(%q, %v).Amount() = %q, want %q", a, ds, got.Amount(), a)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			amount Amount
			denoms []Denomination
		}{
			"zero amount":       {MustParseAmount("USD", "0"), MustParseDenominations("1")},
			"negative amount":   {MustParseAmount("USD", "-1"), MustParseDenominations("1")},
			"zero denomination": {MustParseAmount("USD", "1"), []Denomination{{}}},
		}
		for name, tt := range tests {
			_, err := MakeChange(tt.amount, tt.denoms...)
			if !errors.Is(err, errOutOfRange) {
				t.Errorf("%v: MakeChange(%q, %v) = %v, want %v", name, tt.amount, tt.denoms, err, errOutOfRange)
			}
		}
	})
}

func TestChangeSolution_String(t *testing.T) {
	a := MustParseAmount("USD", "30")
	got, err := MakeChange(a, MustParseDenominations("25", "15", "1")...)
	if err != nil {
		t.Fatalf("MakeChange(%q) failed: %v", a, err)
	}
	want := "USD 30.00 = [25 x 1 1 x 5] + USD 0.00"
	if s := got.String(); s != want {
		t.Errorf("MakeChange(%q).String() = %q, want %q", a, s, want)
	}
}

func TestParseDenominations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ds, err := ParseDenominations("0.01", "1", "500")
		if err != nil {
			t.Fatalf("ParseDenominations failed: %v", err)
		}
		if len(ds) != 3 || ds[0].String() != "0.01" || ds[2].String() != "500" {
			t.Errorf("ParseDenominations(\"0.01\", \"1\", \"500\") = %v", ds)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := [][]string{
			{"0"},
			{"1", "-5"},
			{"abc"},
			{""},
		}
		for _, tt := range tests {
			if _, err := ParseDenominations(tt...); err == nil {
				t.Errorf("ParseDenominations(%q) did not fail", tt)
			}
		}
	})
}

func TestNormalizeDenoms(t *testing.T) {
	got, err := normalizeDenoms(MustParseDenominations("1", "25", "0.5", "15", "25.00", "1"))
	if err != nil {
		t.Fatalf("normalizeDenoms failed: %v", err)
	}
	want := "[25 15 1 0.5]"
	if s := fmt.Sprint(got); s != want {
		t.Errorf("normalizeDenoms() = %v, want %v", s, want)
	}
}

func TestQuantifiedDenomination_Value(t *testing.T) {
	q := QuantifiedDenomination{Denomination: MustParseDenomination("0.25"), Quantity: 3}
	got, err := q.Value()
	if err != nil {
		t.Fatalf("%v.Value() failed: %v", q, err)
	}
	if got.String() != "0.75" {
		t.Errorf("%v.Value() = %v, want 0.75", q, got)
	}
}
