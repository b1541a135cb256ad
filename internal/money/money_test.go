package money

import "testing"

func TestParseAmountStripsCurrencySymbol(t *testing.T) {
	cases := map[string]float64{
		"£2.50":    2.50,
		"$12":      12,
		" £1,250 ": 1250,
		"3.45":     3.45,
		"":         0,
		"n/a":      0,
		"-£1.10":   0, // symbol after sign is not a supported format
	}
	for in, want := range cases {
		if got := ParseAmount(in); got != want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatGBP(t *testing.T) {
	if got := FormatGBP(3.456); got != "£3.46" {
		t.Fatalf("got %q", got)
	}
	if got := FormatGBP(-1.5); got != "-£1.50" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(71.25); got != "71.25%" {
		t.Fatalf("got %q", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(10.474999); got != 10.47 {
		t.Fatalf("Round2: got %v", got)
	}
	if got := Round1(91.04); got != 91.0 {
		t.Fatalf("Round1: got %v", got)
	}
	if got := Round1(71.25); got != 71.3 {
		t.Fatalf("Round1 half: got %v", got)
	}
}
