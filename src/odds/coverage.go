package odds

import (
	"fmt"

	gonum "gonum.org/v1/gonum/stat/combin"

	"github.com/lost-woods/handodds/src/combin"
)

// Group is a named union of categories. Groups may share categories, the
// categories themselves never overlap.
type Group struct {
	Name       string `json:"name" yaml:"name"`
	Categories []int  `json:"categories" yaml:"categories"`
}

// Coverage returns the probability that a hand of h cards drawn from an n-card
// deck holds at least one card of every group.
//
// counts holds the size of each disjoint category; cards not covered by counts
// form an implicit remainder that belongs to no group. The probability is
// computed by inclusion-exclusion over the events "no card of any group in S",
// so the cost is 2^len(groups) evaluations.
func Coverage(n, h int, counts []int, groups []Group) (float64, error) {
	if err := validateDeck(n, h, true); err != nil {
		return 0, err
	}
	for _, g := range groups {
		for _, c := range g.Categories {
			if c < 0 || c >= len(counts) {
				return 0, fmt.Errorf("group %q: %w %d", g.Name, ErrUnknownCategory, c)
			}
		}
	}

	total, err := hands(n, h)
	if err != nil {
		return 0, err
	}
	missing := 0.0
	for size := 1; size <= len(groups); size++ {
		sign := 1.0
		if size%2 == 0 {
			sign = -1.0
		}

		sum := 0.0
		for _, subset := range gonum.Combinations(len(groups), size) {
			sum += pAbsent(n, h, unionSize(counts, groups, subset), total)
		}
		missing += sign * sum
	}

	return clamp01(1 - missing), nil
}

// CoverageSizes is Coverage for pairwise-disjoint groups given only by their
// sizes.
func CoverageSizes(n, h int, sizes []int) (float64, error) {
	groups := make([]Group, len(sizes))
	for i := range sizes {
		groups[i] = Group{Name: fmt.Sprintf("group%d", i+1), Categories: []int{i}}
	}
	return Coverage(n, h, sizes, groups)
}

// unionSize counts every category referenced by the selected groups once.
func unionSize(counts []int, groups []Group, subset []int) int {
	seen := make(map[int]struct{}, len(counts))
	size := 0
	for _, g := range subset {
		for _, c := range groups[g].Categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			size += nonNegative(counts[c])
		}
	}
	return size
}

// pAbsent is the probability that a hand avoids a set of u cards entirely.
func pAbsent(n, h, u int, total float64) float64 {
	if u <= 0 {
		return 1
	}
	if n-u < h {
		return 0
	}
	return combin.Combination(n-u, h) / total
}
