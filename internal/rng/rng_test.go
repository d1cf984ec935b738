package rng

import (
	"testing"
	"time"
)

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d diverged: %v vs %v", i, x, y)
		}
	}
}

func TestIntBetweenBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.IntBetween(22, 70)
		if v < 22 || v > 70 {
			t.Fatalf("IntBetween out of range: %d", v)
		}
	}
	// inclusive on both ends over enough draws
	lo, hi := false, false
	for i := 0; i < 10000; i++ {
		switch s.IntBetween(0, 3) {
		case 0:
			lo = true
		case 3:
			hi = true
		}
	}
	if !lo || !hi {
		t.Fatalf("IntBetween never hit an endpoint (lo=%v hi=%v)", lo, hi)
	}
}

func TestUniformOrderInsensitive(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(10, 5)
		if v < 5 || v > 10 {
			t.Fatalf("Uniform out of range: %v", v)
		}
	}
}

func TestHexAndDigits(t *testing.T) {
	s := New(3)
	h := s.Hex(9)
	if len(h) != 9 {
		t.Fatalf("Hex length = %d", len(h))
	}
	for _, r := range h {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Fatalf("Hex produced %q", h)
		}
	}
	d := s.Digits(6)
	if len(d) != 6 {
		t.Fatalf("Digits length = %d", len(d))
	}
	for _, r := range d {
		if r < '0' || r > '9' {
			t.Fatalf("Digits produced %q", d)
		}
	}
}

func TestWeightedDistribution(t *testing.T) {
	s := New(99)
	outcomes := []string{"a", "b", "c"}
	weights := []float64{0.7, 0.2, 0.1}
	counts := map[string]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[Weighted(s, outcomes, weights)]++
	}
	if f := float64(counts["a"]) / n; f < 0.66 || f > 0.74 {
		t.Errorf("weight 0.7 outcome observed at %v", f)
	}
	if f := float64(counts["c"]) / n; f < 0.07 || f > 0.13 {
		t.Errorf("weight 0.1 outcome observed at %v", f)
	}
}

func TestWeightedPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Weighted(New(1), []string{"a", "b"}, []float64{1})
}

func TestDateBetween(t *testing.T) {
	s := New(5)
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		d := s.DateBetween(start, end)
		if d.Before(start) || d.After(end) {
			t.Fatalf("DateBetween out of range: %v", d)
		}
	}
	if got := s.DateBetween(end, end); !got.Equal(end) {
		t.Fatalf("degenerate range returned %v", got)
	}
}
