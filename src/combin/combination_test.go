package combin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonum "gonum.org/v1/gonum/stat/combin"

	"github.com/lost-woods/handodds/src/combin"
)

func TestCombination_Edges(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
		{-1, 0, 0},
		{-3, -1, 0},
		{5, 2, 10},
		{40, 5, 658008},
		{52, 5, 2598960},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, combin.Combination(tc.n, tc.k), "C(%d,%d)", tc.n, tc.k)
	}
}

func TestCombination_SymmetryAndPascal(t *testing.T) {
	for n := 0; n <= 60; n++ {
		require.Equal(t, 1.0, combin.Combination(n, 0))
		require.Equal(t, 1.0, combin.Combination(n, n))

		for k := 0; k <= n; k++ {
			c := combin.Combination(n, k)
			require.InEpsilon(t, c, combin.Combination(n, n-k), 1e-12, "symmetry n=%d k=%d", n, k)

			if n > 0 && k > 0 && k < n {
				pascal := combin.Combination(n-1, k-1) + combin.Combination(n-1, k)
				require.InEpsilon(t, pascal, c, 1e-12, "pascal n=%d k=%d", n, k)
			}
		}
	}
}

func TestCombination_MatchesGonumBinomial(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for k := 0; k <= n; k++ {
			want := float64(gonum.Binomial(n, k))
			got := combin.Combination(n, k)
			if math.Abs(got-want) > want*1e-12 {
				t.Fatalf("C(%d,%d) got %v want %v", n, k, got, want)
			}
		}
	}
}

func TestCombination_LargeDecksStayFinite(t *testing.T) {
	for _, n := range []int{342, 500, 1000, 1020} {
		c := combin.Combination(n, n/2)
		require.False(t, math.IsInf(c, 0) || math.IsNaN(c), "C(%d,%d)=%v", n, n/2, c)
		require.InEpsilon(t, c, combin.Combination(n-1, n/2-1)+combin.Combination(n-1, n/2), 1e-9, "pascal n=%d", n)
	}

	assert.True(t, math.IsInf(combin.Combination(2000, 1000), 1))
}
