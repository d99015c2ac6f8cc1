package deck

import (
	"errors"
	"fmt"
)

// ErrConflictingElements marks a row claiming both element 2 and element 3.
var ErrConflictingElements = errors.New("element 2 and element 3 cannot be combined")

// Kind is the disjoint category a deck row belongs to.
type Kind int

const (
	KindInvalid Kind = iota
	KindKey
	KindX1
	KindX2
	KindX3
	KindX12
	KindX13
	KindX0
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindKey:     "key",
	KindX1:      "x1",
	KindX2:      "x2",
	KindX3:      "x3",
	KindX12:     "x12",
	KindX13:     "x13",
	KindX0:      "x0",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Flags are the attributes a user ticks for one row of the deck list.
type Flags struct {
	Key bool `json:"isA" yaml:"isA"`
	E1  bool `json:"e1" yaml:"e1"`
	E2  bool `json:"e2" yaml:"e2"`
	E3  bool `json:"e3" yaml:"e3"`
}

// Classify maps a flag set onto its category. The key card takes precedence
// over element flags; element 2 together with element 3 is rejected.
func Classify(f Flags) (Kind, error) {
	if f.Key {
		return KindKey, nil
	}
	switch {
	case f.E2 && f.E3:
		return KindInvalid, ErrConflictingElements
	case f.E1 && f.E2:
		return KindX12, nil
	case f.E1 && f.E3:
		return KindX13, nil
	case f.E1:
		return KindX1, nil
	case f.E2:
		return KindX2, nil
	case f.E3:
		return KindX3, nil
	default:
		return KindX0, nil
	}
}
