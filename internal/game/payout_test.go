package game

import "testing"

func TestIsWinTable(t *testing.T) {
	cases := []struct {
		result int
		win    bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, false},
		{14, true},
		{35, false},
		{36, true},
	}
	for _, c := range cases {
		if got := IsWin(c.result); got != c.win {
			t.Fatalf("IsWin(%d) = %v, want %v", c.result, got, c.win)
		}
	}
}

func TestWinAmountIsOneAndAHalfTimesBet(t *testing.T) {
	if got := WinAmount(50); got != 75 {
		t.Fatalf("WinAmount(50) = %d, want 75", got)
	}
	if got := WinAmount(10); got != 15 {
		t.Fatalf("WinAmount(10) = %d, want 15", got)
	}
	// Odd bets round the half coin down.
	if got := WinAmount(11); got != 16 {
		t.Fatalf("WinAmount(11) = %d, want 16", got)
	}
}

func TestBalanceDelta(t *testing.T) {
	if got := BalanceDelta(50, true); got != 25 {
		t.Fatalf("BalanceDelta(50, win) = %d, want 25", got)
	}
	if got := BalanceDelta(50, false); got != -50 {
		t.Fatalf("BalanceDelta(50, loss) = %d, want -50", got)
	}
}

func TestGeneratorStaysInRange(t *testing.T) {
	gen := NewGenerator()
	seen := map[int]bool{}
	for i := 0; i < 10000; i++ {
		n := gen.Draw()
		if n < MinResult || n > MaxResult {
			t.Fatalf("Draw() = %d, out of range", n)
		}
		seen[n] = true
	}
	// 10k draws over 37 sectors should hit every sector.
	if len(seen) != 37 {
		t.Fatalf("saw %d distinct results, want 37", len(seen))
	}
}
