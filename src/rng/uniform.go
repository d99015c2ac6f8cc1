package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyRange = errors.New("range must hold at least one value")

// Uniform returns an unbiased integer in [0, n) read from r. 32-bit samples
// at or above the largest multiple of n are rejected and redrawn.
func Uniform(r io.Reader, n int) (int, error) {
	if n <= 0 || uint64(n) > 1<<32 {
		return 0, ErrEmptyRange
	}
	if n == 1 {
		return 0, nil
	}

	span := uint64(n)
	limit := (1 << 32) / span * span

	var buf [4]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("read entropy: %w", err)
		}
		if x := uint64(binary.BigEndian.Uint32(buf[:])); x < limit {
			return int(x % span), nil
		}
	}
}
