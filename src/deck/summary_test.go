package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lost-woods/handodds/src/deck"
)

func sampleRows() []deck.Row {
	return []deck.Row{
		{Name: "key card", Count: 1, Flags: deck.Flags{Key: true}},
		{Name: "element 1", Count: 6, Flags: deck.Flags{E1: true}},
		{Name: "element 2", Count: 6, Flags: deck.Flags{E2: true}},
		{Name: "element 3", Count: 6, Flags: deck.Flags{E3: true}},
		{Name: "other", Count: 21},
	}
}

func issueCodes(issues []deck.Issue) []string {
	codes := make([]string, 0, len(issues))
	for _, i := range issues {
		codes = append(codes, i.Code)
	}
	return codes
}

func TestAggregate_SampleDeck(t *testing.T) {
	s := deck.Aggregate(40, sampleRows())

	assert.Equal(t, 40, s.ListTotal)
	assert.Zero(t, s.Invalid)
	assert.Equal(t, []int{1, 6, 6, 6, 0, 0}, s.CoverageCounts())
	assert.Equal(t, 21, s.Counts[deck.KindX0])
	assert.Empty(t, s.Issues())

	p, err := s.Coverage(5)
	require.NoError(t, err)
	assert.InDelta(t, 9.0/962.0, p, 1e-12)
}

func TestAggregate_DualElements(t *testing.T) {
	rows := []deck.Row{
		{Count: 1, Flags: deck.Flags{Key: true}},
		{Count: 4, Flags: deck.Flags{E1: true}},
		{Count: 4, Flags: deck.Flags{E2: true}},
		{Count: 4, Flags: deck.Flags{E3: true}},
		{Count: 3, Flags: deck.Flags{E1: true, E2: true}},
		{Count: 3, Flags: deck.Flags{E1: true, E3: true}},
		{Count: 21},
	}
	s := deck.Aggregate(40, rows)

	p, err := s.Coverage(5)
	require.NoError(t, err)
	assert.InDelta(t, 18545.0/658008.0, p, 1e-12)
}

func TestAggregate_InvalidAndMismatch(t *testing.T) {
	rows := []deck.Row{
		{Count: 3, Flags: deck.Flags{E2: true, E3: true}},
		{Count: -5, Flags: deck.Flags{E1: true}},
		{Count: 10, Flags: deck.Flags{E1: true}},
	}
	s := deck.Aggregate(40, rows)

	assert.Equal(t, 3, s.Invalid)
	assert.Equal(t, 13, s.ListTotal)
	assert.Equal(t, 10, s.Counts[deck.KindX1])
	assert.Equal(t, []string{"invalid_rows", "list_total_short", "no_key_card"}, issueCodes(s.Issues()))

	p, err := s.Coverage(5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p, 1e-12, "no key card means no success")

	over := deck.Aggregate(5, sampleRows())
	assert.True(t, deck.HasOverflow(over.Issues()))
}

func TestVS_Defaults(t *testing.T) {
	v := deck.DefaultVS()
	assert.Equal(t, 24, v.Listed())
	assert.Equal(t, 16, v.Other(deck.DefaultDeckSize))

	p, err := v.Probability(deck.DefaultDeckSize, deck.DefaultHandSize)
	require.NoError(t, err)
	assert.InDelta(t, 35869.0/658008.0, p, 1e-12)

	assert.Equal(t, []string{"other_filled"}, issueCodes(v.Issues(40, 5)))
}

func TestVS_Issues(t *testing.T) {
	v := deck.VS{VS: 1, Fire: 30, Dark: 30}
	codes := issueCodes(v.Issues(40, 41))
	assert.Equal(t, []string{deck.IssueOverflow, "hand_exceeds_deck", "no_key_card", "too_few_vs"}, codes)

	_, err := v.Probability(40, 41)
	require.Error(t, err)
}
