package wheel

import (
	"math"
	"testing"
)

func TestOrderIsAPermutation(t *testing.T) {
	if len(Order) != 37 {
		t.Fatalf("len(Order) = %d, want 37", len(Order))
	}
	seen := map[int]bool{}
	for _, n := range Order {
		if n < 0 || n > 36 {
			t.Fatalf("sector %d out of range", n)
		}
		if seen[n] {
			t.Fatalf("sector %d appears twice", n)
		}
		seen[n] = true
	}
}

func TestComputeRotationDeterministic(t *testing.T) {
	first, err := ComputeRotation(1000, 14, 5)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ComputeRotation(1000, 14, 5)
		if err != nil {
			t.Fatalf("compute: %v", err)
		}
		if again != first {
			t.Fatalf("rotation varies: %v vs %v", again, first)
		}
	}
}

func TestComputeRotationAlignsSector(t *testing.T) {
	for _, result := range []int{0, 14, 26, 32} {
		final, err := ComputeRotation(1000, result, 5)
		if err != nil {
			t.Fatalf("compute %d: %v", result, err)
		}
		// finalRotation mod 360 must park the result's sector at the
		// pointer: mod == 360 - index*sectorAngle (mod 360).
		got := math.Mod(final, 360)
		want := math.Mod(360-float64(IndexOf(result))*SectorAngle, 360)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("result %d: mod = %v, want %v", result, got, want)
		}
	}
}

func TestComputeRotationMonotonic(t *testing.T) {
	prev := 0.0
	for _, result := range []int{3, 3, 0, 36} {
		next, err := ComputeRotation(prev, result, 5)
		if err != nil {
			t.Fatalf("compute: %v", err)
		}
		if next <= prev {
			t.Fatalf("rotation went backwards: %v -> %v", prev, next)
		}
		prev = next
	}
}

func TestComputeRotationRejectsUnknownResult(t *testing.T) {
	if _, err := ComputeRotation(0, 37, 5); err == nil {
		t.Fatal("expected error for result off the wheel")
	}
}

func TestColorOf(t *testing.T) {
	if ColorOf(0) != Green {
		t.Fatal("0 must be green")
	}
	if ColorOf(32) != Red {
		t.Fatal("32 must be red")
	}
	if ColorOf(15) != Black {
		t.Fatal("15 must be black")
	}
}
