package utils

import "testing"

func TestFormatPeso(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{340, "₱340.00"},
		{1234.5, "₱1234.50"},
		{0, "₱0.00"},
		{19.999, "₱20.00"},
	}
	for _, c := range cases {
		if got := FormatPeso(c.in); got != c.want {
			t.Errorf("FormatPeso(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{2.344, 2.34},
		{2.345, 2.35},
		{-1.005, -1.01},
		{10, 10},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(3.14); got != 3.1 {
		t.Errorf("Round1(3.14) = %v", got)
	}
	if got := Round1(3.15); got != 3.2 {
		t.Errorf("Round1(3.15) = %v", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.345); got != "+12.3%" {
		t.Errorf("FormatPercent(12.345) = %q", got)
	}
	if got := FormatPercent(-4.2); got != "-4.2%" {
		t.Errorf("FormatPercent(-4.2) = %q", got)
	}
	if got := FormatPercent(0); got != "+0.0%" {
		t.Errorf("FormatPercent(0) = %q", got)
	}
}
