package utils

import "testing"

func TestClampInt(t *testing.T) {
	cases := []struct {
		n, lo, hi, want int
	}{
		{0, 1, 20, 1},
		{-5, 1, 20, 1},
		{1, 1, 20, 1},
		{7, 1, 20, 7},
		{20, 1, 20, 20},
		{25, 1, 20, 20},
	}
	for _, tc := range cases {
		if got := ClampInt(tc.n, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("ClampInt(%d, %d, %d) = %d, want %d", tc.n, tc.lo, tc.hi, got, tc.want)
		}
	}
}
