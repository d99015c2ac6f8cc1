package odds

import "errors"

// Input validation failures. They are returned before any probability is
// computed, so a non-nil error never comes with a meaningful probability.
var (
	ErrInvalidDeckSize       = errors.New("deck size must be positive")
	ErrDeckTooLarge          = errors.New("deck size exceeds 1000 cards")
	ErrCountsExceedDeck      = errors.New("category counts exceed deck size")
	ErrInvalidHandSize       = errors.New("hand size must be positive")
	ErrHandExceedsDeck       = errors.New("hand size exceeds deck size")
	ErrDegenerateDenominator = errors.New("number of possible hands evaluated to zero")
	ErrNilPredicate          = errors.New("success predicate is required")
	ErrUnknownCategory       = errors.New("unknown category index")
	ErrInvalidRule           = errors.New("invalid threshold rule")
	ErrInvalidSimulation     = errors.New("trials and batches must be positive")
)
