package money

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1234.567, 1234.57},
		{1234.564, 1234.56},
		{0.005, 0.01},
		{-12.345, -12.35},
		{100, 100},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRoundThousand(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1_234_567, 1_235_000},
		{1_234_499, 1_234_000},
		{500, 1000}, // decimal rounds half away from zero
		{499, 0},
		{2_000_000, 2_000_000},
	}
	for _, c := range cases {
		if got := RoundThousand(c.in); got != c.want {
			t.Errorf("RoundThousand(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRound4(t *testing.T) {
	if got := Round4(0.123456); got != 0.1235 {
		t.Errorf("Round4 = %v", got)
	}
}
