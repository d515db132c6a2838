package placement

import (
	"errors"
	"testing"
)

func TestWalk_WrapsBothDirections(t *testing.T) {
	tests := []struct {
		n, i, steps int
		want        int
	}{
		{n: 3, i: 0, steps: 1, want: 1},
		{n: 3, i: 2, steps: 1, want: 0},
		{n: 3, i: 0, steps: -1, want: 2},
		{n: 3, i: 1, steps: -4, want: 0},
		{n: 3, i: 1, steps: 7, want: 2},
		{n: 3, i: 1, steps: 0, want: 1},
		{n: 1, i: 0, steps: -5, want: 0},
		{n: 4, i: 3, steps: -12, want: 3},
	}
	for _, tt := range tests {
		got, err := Walk(tt.n, tt.i, tt.steps)
		if err != nil {
			t.Fatalf("Walk(%d, %d, %d) error: %v", tt.n, tt.i, tt.steps, err)
		}
		if got != tt.want {
			t.Fatalf("Walk(%d, %d, %d) = %d, want %d", tt.n, tt.i, tt.steps, got, tt.want)
		}
	}
}

func TestWalk_PeriodicAndInvertible(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			for s := -12; s <= 12; s++ {
				base, err := Walk(n, i, s)
				if err != nil {
					t.Fatalf("Walk(%d, %d, %d) error: %v", n, i, s, err)
				}
				if base < 0 || base >= n {
					t.Fatalf("Walk(%d, %d, %d) = %d, out of range", n, i, s, base)
				}
				for k := -3; k <= 3; k++ {
					shifted, _ := Walk(n, i, s+k*n)
					if shifted != base {
						t.Fatalf("Walk(%d, %d, %d) = %d, but Walk with +%d*n = %d", n, i, s, base, k, shifted)
					}
				}
				back, _ := Walk(n, base, -s)
				if back != i {
					t.Fatalf("Walk(%d, Walk(%d, %d, %d), %d) = %d, want %d", n, n, i, s, -s, back, i)
				}
			}
		}
	}
}

func TestWalk_RejectsInvalidIndex(t *testing.T) {
	cases := [][2]int{{0, 0}, {3, -1}, {3, 3}}
	for _, c := range cases {
		if _, err := Walk(c[0], c[1], 1); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("Walk(%d, %d, 1) error = %v, want ErrInvalidIndex", c[0], c[1], err)
		}
	}
}
