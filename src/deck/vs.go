package deck

import (
	"fmt"

	"github.com/lost-woods/handodds/src/odds"
)

// VS holds the category counts for the VS deck check. Every card sits in
// exactly one field; cards not listed are "other".
type VS struct {
	Key    int `json:"key" yaml:"key" validate:"gte=0"`
	VSFire int `json:"vs_fire" yaml:"vs_fire" validate:"gte=0"`
	VSDark int `json:"vs_dark" yaml:"vs_dark" validate:"gte=0"`
	VS     int `json:"vs" yaml:"vs" validate:"gte=0"`
	Fire   int `json:"fire" yaml:"fire" validate:"gte=0"`
	Dark   int `json:"dark" yaml:"dark" validate:"gte=0"`
}

const (
	DefaultDeckSize = 40
	DefaultHandSize = 5
)

// DefaultVS is the starting configuration of a 40-card VS deck.
func DefaultVS() VS {
	return VS{Key: 1, VSFire: 6, VSDark: 6, VS: 3, Fire: 4, Dark: 4}
}

// VSRules need the key card, two VS cards counting the key card, one fire
// card and one dark card. Indices follow VS.Counts.
var VSRules = []odds.Rule{
	{Name: "key", Categories: []int{0}, Min: 1},
	{Name: "vs_total", Categories: []int{0, 1, 2, 3}, Min: 2},
	{Name: "fire", Categories: []int{1, 4}, Min: 1},
	{Name: "dark", Categories: []int{2, 5}, Min: 1},
}

// Counts lists the named categories in VSRules order.
func (v VS) Counts() []int {
	return []int{v.Key, v.VSFire, v.VSDark, v.VS, v.Fire, v.Dark}
}

// Listed is the number of cards assigned to a named category.
func (v VS) Listed() int {
	sum := 0
	for _, c := range v.Counts() {
		sum += max(0, c)
	}
	return sum
}

// Other is the auto-filled remainder of an n-card deck.
func (v VS) Other(n int) int {
	return max(0, n-v.Listed())
}

// Probability is the chance an h-card hand from an n-card deck can use the
// key card.
func (v VS) Probability(n, h int) (float64, error) {
	return odds.Threshold(n, h, v.Counts(), odds.AllOf(VSRules...))
}

// Issues reports what the user should fix or know before trusting the
// result. Overflow is the only issue that makes the result meaningless.
func (v VS) Issues(n, h int) []Issue {
	var out []Issue

	listed := v.Listed()
	switch {
	case listed > n:
		out = append(out, Issue{IssueOverflow, fmt.Sprintf("listed cards exceed the deck: %d > %d", listed, n)})
	case listed < n:
		out = append(out, Issue{"other_filled", fmt.Sprintf("the remaining %d cards count as other", n-listed)})
	}

	if h > n {
		out = append(out, Issue{"hand_exceeds_deck", "hand size exceeds deck size"})
	}
	if v.Key <= 0 {
		out = append(out, Issue{"no_key_card", "the deck has no key card, the probability is 0%"})
	}
	if v.Key+v.VSFire+v.VSDark+v.VS < 2 {
		out = append(out, Issue{"too_few_vs", "the deck holds fewer than two VS cards, the probability is 0%"})
	}
	return out
}

// IssueOverflow is reported when listed categories hold more cards than the
// deck.
const IssueOverflow = "list_exceeds_deck"

// HasOverflow reports whether issues contain IssueOverflow.
func HasOverflow(issues []Issue) bool {
	for _, i := range issues {
		if i.Code == IssueOverflow {
			return true
		}
	}
	return false
}
