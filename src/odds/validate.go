package odds

import (
	"math"

	"github.com/lost-woods/handodds/src/combin"
)

// MaxDeckSize is the largest deck the engine accepts. C(n, h) stays finite in
// float64 for every h up to this size.
const MaxDeckSize = 1000

func validateDeck(n, h int, allowEmptyHand bool) error {
	if n <= 0 {
		return ErrInvalidDeckSize
	}
	if n > MaxDeckSize {
		return ErrDeckTooLarge
	}
	if h < 0 || (h == 0 && !allowEmptyHand) {
		return ErrInvalidHandSize
	}
	if h > n {
		return ErrHandExceedsDeck
	}
	return nil
}

// hands returns C(n, h), the denominator of every probability here.
func hands(n, h int) (float64, error) {
	total := combin.Combination(n, h)
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, ErrDegenerateDenominator
	}
	return total, nil
}

// CheckPartition reports ErrCountsExceedDeck when the named categories hold
// more cards than the deck. Threshold and Coverage tolerate that (the
// remainder is clamped to zero); callers that need a consistent deck check
// it first.
func CheckPartition(n int, counts []int) error {
	sum := 0
	for _, c := range counts {
		sum += nonNegative(c)
	}
	if sum > n {
		return ErrCountsExceedDeck
	}
	return nil
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func nonNegative(x int) int {
	if x < 0 {
		return 0
	}
	return x
}

// withOther copies counts (negatives read as zero) and appends the remainder
// of the deck, never below zero.
func withOther(n int, counts []int) []int {
	out := make([]int, 0, len(counts)+1)
	sum := 0
	for _, c := range counts {
		c = nonNegative(c)
		sum += c
		out = append(out, c)
	}
	return append(out, nonNegative(n-sum))
}
