package rng_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lost-woods/handodds/src/rng"
)

func TestNewDeck_LaysOutCategories(t *testing.T) {
	deck := rng.NewDeck([]int{2, 0, -1, 3})
	want := []int{0, 0, 3, 3, 3}
	if len(deck) != len(want) {
		t.Fatalf("len=%d want %d", len(deck), len(want))
	}
	for i := range want {
		if deck[i] != want[i] {
			t.Fatalf("deck=%v want %v", deck, want)
		}
	}
}

func TestDrawHand_KeepsDeckAndCountsHand(t *testing.T) {
	counts := []int{1, 6, 6, 3, 4, 4, 16}
	deck := rng.NewDeck(counts)
	r := &xorshift32{x: 0xC0FFEE}

	for round := 0; round < 500; round++ {
		draw := make([]int, len(counts))
		if err := rng.DrawHand(r, nil, deck, 5, draw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		total := 0
		for cat, d := range draw {
			if d > counts[cat] {
				t.Fatalf("round %d: drew %d of category %d holding %d", round, d, cat, counts[cat])
			}
			total += d
		}
		if total != 5 {
			t.Fatalf("round %d: hand has %d cards", round, total)
		}
	}

	// the shuffle only permutes, so the deck still holds the same cards
	seen := make([]int, len(counts))
	for _, cat := range deck {
		seen[cat]++
	}
	for cat := range counts {
		if seen[cat] != counts[cat] {
			t.Fatalf("category %d has %d cards after dealing, want %d", cat, seen[cat], counts[cat])
		}
	}
}

func TestDrawHand_WholeDeckAndTooMany(t *testing.T) {
	deck := rng.NewDeck([]int{2, 3})
	draw := make([]int, 2)
	if err := rng.DrawHand(&uint32CounterReader{}, nil, deck, 5, draw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draw[0] != 2 || draw[1] != 3 {
		t.Fatalf("whole deck draw=%v", draw)
	}

	if err := rng.DrawHand(&uint32CounterReader{}, nil, deck, 6, make([]int, 2)); err == nil {
		t.Fatalf("expected error when hand exceeds deck")
	}
}

func TestDrawHand_CountsDealsInHealth(t *testing.T) {
	h := rng.NewHealth()
	h.Set(true, "")
	deck := rng.NewDeck([]int{3, 7})

	for i := 0; i < 4; i++ {
		if err := rng.DrawHand(&xorshift32{x: uint32(i + 1)}, h, deck, 5, make([]int, 2)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := rng.DrawHand(&scriptedReader{}, h, deck, 5, make([]int, 2)); err == nil {
		t.Fatalf("expected error on exhausted reader")
	}

	stats := h.Stats()
	if stats.Deals != 4 || stats.FailedDeals != 1 {
		t.Fatalf("deals=%d failed=%d, want 4 and 1", stats.Deals, stats.FailedDeals)
	}
	if stats.OK || !strings.Contains(stats.Reason, "deal failed") {
		t.Fatalf("failed deal should mark the source unhealthy: %+v", stats)
	}

	// an oversized hand never reaches the source
	if err := rng.DrawHand(&scriptedReader{}, h, deck, 11, make([]int, 2)); !errors.Is(err, rng.ErrHandTooLarge) {
		t.Fatalf("expected ErrHandTooLarge, got %v", err)
	}
	if got := h.Stats().FailedDeals; got != 1 {
		t.Fatalf("failed=%d after rejected hand, want 1", got)
	}
}
