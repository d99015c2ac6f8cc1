package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/handodds/src/odds"
)

// Limits bound the work a single request may ask for. Enumeration cost grows
// with the number of categories and the hand size, so both are capped.
type Limits struct {
	MaxDeckSize   int
	MaxHandSize   int
	MaxCategories int
	MaxRules      int
	MaxTrials     int
}

func DefaultLimits() Limits {
	return Limits{
		MaxDeckSize:   200,
		MaxHandSize:   15,
		MaxCategories: 8,
		MaxRules:      16,
		MaxTrials:     200000,
	}
}

// deckOK rejects sizes above the configured limits with 400.
func (h *Handlers) deckOK(c *gin.Context, deckSize, handSize int) bool {
	if deckSize > h.limits.MaxDeckSize {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Deck size should not exceed %d.", h.limits.MaxDeckSize))
		return false
	}
	if handSize > h.limits.MaxHandSize {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Hand size should not exceed %d.", h.limits.MaxHandSize))
		return false
	}
	return true
}

// partitionOK applies the deck limits, the category and rule caps, and
// rejects named counts that do not fit in the deck with 422.
func (h *Handlers) partitionOK(c *gin.Context, req thresholdRequest) bool {
	if !h.deckOK(c, req.DeckSize, req.HandSize) {
		return false
	}
	if len(req.Counts) > h.limits.MaxCategories {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Categories should not exceed %d.", h.limits.MaxCategories))
		return false
	}
	if len(req.Rules) > h.limits.MaxRules {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Rules should not exceed %d.", h.limits.MaxRules))
		return false
	}
	if err := odds.CheckPartition(req.DeckSize, req.Counts); err != nil {
		responder{c}.err(http.StatusUnprocessableEntity, "Category counts exceed the deck size.")
		return false
	}
	return true
}
