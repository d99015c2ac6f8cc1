package deck

import (
	"fmt"

	"github.com/lost-woods/handodds/src/odds"
)

// Row is one line of a deck list.
type Row struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count" validate:"gte=0"`
	Flags `yaml:",inline"`
}

// Summary is a deck list collapsed into per-kind counts.
type Summary struct {
	Size      int          `json:"deck_size"`
	Counts    map[Kind]int `json:"-"`
	Invalid   int          `json:"invalid"`
	ListTotal int          `json:"list_total"`
}

// Issue is a non-fatal problem with the deck input, meant to be shown to the
// user next to the result.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Aggregate sums row counts per kind. Rows with conflicting flags are counted
// as invalid and kept out of every category.
func Aggregate(size int, rows []Row) Summary {
	s := Summary{Size: size, Counts: make(map[Kind]int)}
	for _, r := range rows {
		c := max(0, r.Count)
		s.ListTotal += c

		kind, err := Classify(r.Flags)
		if err != nil {
			s.Invalid += c
			continue
		}
		s.Counts[kind] += c
	}
	return s
}

// Issues lists what is inconsistent about the summary. The probability can
// still be computed; unlisted cards fall into the remainder.
func (s Summary) Issues() []Issue {
	var out []Issue
	if s.Invalid > 0 {
		out = append(out, Issue{"invalid_rows", fmt.Sprintf("%d cards have element 2 and element 3 set together", s.Invalid)})
	}
	switch {
	case s.ListTotal > s.Size:
		out = append(out, Issue{IssueOverflow, fmt.Sprintf("deck list holds %d cards but the deck size is %d", s.ListTotal, s.Size)})
	case s.ListTotal < s.Size:
		out = append(out, Issue{"list_total_short", fmt.Sprintf("deck list holds %d cards but the deck size is %d", s.ListTotal, s.Size)})
	}
	if s.Counts[KindKey] <= 0 {
		out = append(out, Issue{"no_key_card", "no row is marked as the key card"})
	}
	return out
}

var coverageKinds = []Kind{KindKey, KindX1, KindX2, KindX3, KindX12, KindX13}

// CoverageGroups are the groups the key card needs in hand: the key card
// itself and one card of every element, where dual-element cards count for
// both of their elements.
var CoverageGroups = []odds.Group{
	{Name: "key", Categories: []int{0}},
	{Name: "element1", Categories: []int{1, 4, 5}},
	{Name: "element2", Categories: []int{2, 4}},
	{Name: "element3", Categories: []int{3, 5}},
}

// CoverageCounts returns the category counts in CoverageGroups order.
func (s Summary) CoverageCounts() []int {
	counts := make([]int, len(coverageKinds))
	for i, k := range coverageKinds {
		counts[i] = s.Counts[k]
	}
	return counts
}

// Coverage is the probability that a hand of h cards holds the key card and
// every element.
func (s Summary) Coverage(h int) (float64, error) {
	return odds.Coverage(s.Size, h, s.CoverageCounts(), CoverageGroups)
}
