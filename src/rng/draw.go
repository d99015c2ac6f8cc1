package rng

import (
	"errors"
	"io"
)

// NewDeck lays out one entry per card holding the index of its category.
func NewDeck(counts []int) []int {
	size := 0
	for _, c := range counts {
		if c > 0 {
			size += c
		}
	}

	deck := make([]int, 0, size)
	for cat, c := range counts {
		for i := 0; i < c; i++ {
			deck = append(deck, cat)
		}
	}
	return deck
}

var ErrHandTooLarge = errors.New("there are more cards to pick than cards in the deck")

// DrawHand deals hand cards from deck without replacement and adds the number
// of cards drawn per category into draw, which must be zeroed by the caller.
// Every deal that reaches the entropy source is counted in h, if set.
//
// It runs a partial Fisher-Yates shuffle in place: deck stays a permutation of
// the same cards, so it can be reused for the next hand without rebuilding.
func DrawHand(r io.Reader, h *Health, deck []int, hand int, draw []int) error {
	if hand < 0 || hand > len(deck) {
		return ErrHandTooLarge
	}

	err := deal(r, deck, hand, draw)
	h.dealt(err)
	return err
}

func deal(r io.Reader, deck []int, hand int, draw []int) error {
	for i := 0; i < hand; i++ {
		offset, err := Uniform(r, len(deck)-i)
		if err != nil {
			return err
		}
		j := i + offset
		deck[i], deck[j] = deck[j], deck[i]
		draw[deck[i]]++
	}
	return nil
}
