package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestWeighted(t *testing.T) {
	r := NewRNG(7)
	if got := r.Weighted([]int{0, -3}); got != -1 {
		t.Fatalf("all-zero weights picked %d", got)
	}
	for i := 0; i < 200; i++ {
		if got := r.Weighted([]int{0, 5, 0, 1}); got != 1 && got != 3 {
			t.Fatalf("picked zero-weight index %d", got)
		}
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should be 0")
	}
}
