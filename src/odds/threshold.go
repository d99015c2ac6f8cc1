package odds

import "github.com/lost-woods/handodds/src/combin"

// Predicate reports whether a hand with the given per-category draw counts is
// a success. draw has one entry per named category followed by the "other"
// remainder. It must not retain or modify draw.
type Predicate func(draw []int) bool

// Threshold returns the exact probability that a hand of h cards from an
// n-card deck satisfies pred, by enumerating every feasible draw tuple.
//
// counts lists the named categories in order; the remainder of the deck,
// max(0, n-sum(counts)), is appended as the final "other" category.
func Threshold(n, h int, counts []int, pred Predicate) (float64, error) {
	if err := validateDeck(n, h, false); err != nil {
		return 0, err
	}
	if pred == nil {
		return 0, ErrNilPredicate
	}

	total, err := hands(n, h)
	if err != nil {
		return 0, err
	}

	hits := 0.0
	Enumerate(n, h, counts, func(draw []int, ways float64) {
		if pred(draw) {
			hits += ways
		}
	})
	return clamp01(hits / total), nil
}

// Enumerate calls visit once for every draw tuple (d1..dk, other) whose
// entries stay within their category counts and sum to h, together with the
// number of hands realising it. The draw slice is reused between calls.
func Enumerate(n, h int, counts []int, visit func(draw []int, ways float64)) {
	if h < 0 {
		return
	}
	cats := withOther(n, counts)

	// ways[i][d] = C(cats[i], d) for d in [0, min(cats[i], h)]
	ways := make([][]float64, len(cats))
	for i, c := range cats {
		top := min(c, h)
		ways[i] = make([]float64, top+1)
		for d := 0; d <= top; d++ {
			ways[i][d] = combin.Combination(c, d)
		}
	}

	draw := make([]int, len(cats))
	last := len(cats) - 1

	var walk func(i, budget int, acc float64)
	walk = func(i, budget int, acc float64) {
		if i == last {
			if budget > cats[last] {
				return
			}
			draw[last] = budget
			visit(draw, acc*ways[last][budget])
			return
		}
		for d := 0; d <= min(cats[i], budget); d++ {
			draw[i] = d
			walk(i+1, budget-d, acc*ways[i][d])
		}
	}
	walk(0, h, 1)
}

// Distribution returns the exact probability of drawing exactly 0..h cards of
// the category at index. index len(counts) addresses the "other" remainder.
func Distribution(n, h int, counts []int, index int) ([]float64, error) {
	if err := validateDeck(n, h, true); err != nil {
		return nil, err
	}
	if index < 0 || index > len(counts) {
		return nil, ErrUnknownCategory
	}

	total, err := hands(n, h)
	if err != nil {
		return nil, err
	}

	mass := make([]float64, h+1)
	Enumerate(n, h, counts, func(draw []int, ways float64) {
		mass[draw[index]] += ways
	})
	for i := range mass {
		mass[i] = clamp01(mass[i] / total)
	}
	return mass, nil
}
