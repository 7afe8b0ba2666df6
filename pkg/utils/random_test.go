package utils

import "testing"

func TestBetween_InclusiveRange(t *testing.T) {
	rng := NewRandomSource(42)

	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		v := Between(rng, -2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("Between(-2, 2) = %d, out of range", v)
		}
		if v == -2 {
			seenMin = true
		}
		if v == 2 {
			seenMax = true
		}
	}

	if !seenMin || !seenMax {
		t.Errorf("Between should reach both ends, seenMin=%v seenMax=%v", seenMin, seenMax)
	}
}

func TestBetween_SwappedBounds(t *testing.T) {
	rng := NewRandomSource(1)
	for i := 0; i < 100; i++ {
		v := Between(rng, 300, 200)
		if v < 200 || v > 300 {
			t.Fatalf("Between(300, 200) = %d, out of range", v)
		}
	}
}

func TestBetween_SingleValue(t *testing.T) {
	rng := NewRandomSource(7)
	if v := Between(rng, 5, 5); v != 5 {
		t.Errorf("Between(5, 5) = %d, want 5", v)
	}
}

func TestChance(t *testing.T) {
	rng := NewRandomSource(99)

	for i := 0; i < 100; i++ {
		if Chance(rng, 0) {
			t.Fatal("Chance(0) should never be true")
		}
		if !Chance(rng, 1) {
			t.Fatal("Chance(1) should always be true")
		}
	}

	hits := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		if Chance(rng, 0.05) {
			hits++
		}
	}
	ratio := float64(hits) / trials
	if ratio < 0.03 || ratio > 0.07 {
		t.Errorf("Chance(0.05) hit ratio = %.4f, want about 0.05", ratio)
	}
}

func TestNewRandomSource_Deterministic(t *testing.T) {
	a := NewRandomSource(1234)
	b := NewRandomSource(1234)
	for i := 0; i < 10; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}
