package rng

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// stuckRepeats is how many identical 32-bit samples in a row mark a watched
// source as stuck.
const stuckRepeats = 20

// Health records whether the entropy source behind simulated deals can be
// trusted, and how many deals it has served or failed.
type Health struct {
	mu        sync.RWMutex
	source    string
	ok        bool
	reason    string
	checkedAt time.Time

	deals  uint64
	failed uint64

	last    uint32
	repeats int
}

// HealthStats is a point-in-time copy of Health.
type HealthStats struct {
	Source      string    `json:"source"`
	OK          bool      `json:"ok"`
	Reason      string    `json:"reason,omitempty"`
	CheckedAt   time.Time `json:"last_checked"`
	Deals       uint64    `json:"deals"`
	FailedDeals uint64    `json:"failed_deals"`
}

func NewHealth() *Health { return &Health{} }

func (h *Health) Set(ok bool, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.set(ok, reason)
}

func (h *Health) set(ok bool, reason string) {
	h.ok = ok
	h.reason = reason
	h.checkedAt = time.Now()
}

func (h *Health) Snapshot() (ok bool, reason string, t time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ok, h.reason, h.checkedAt
}

func (h *Health) Stats() HealthStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return HealthStats{
		Source:      h.source,
		OK:          h.ok,
		Reason:      h.reason,
		CheckedAt:   h.checkedAt,
		Deals:       h.deals,
		FailedDeals: h.failed,
	}
}

// dealt counts one deal. A failed deal means the source could not be read,
// so it also marks the source unhealthy. nil receivers are ignored.
func (h *Health) dealt(err error) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err == nil {
		h.deals++
		return
	}
	h.failed++
	h.set(false, "deal failed: "+err.Error())
}

// sampleCheck inspects a raw sample and describes what is wrong with it.
type sampleCheck func(sample []byte) string

var sampleChecks = []sampleCheck{
	func(s []byte) string {
		for _, b := range s[1:] {
			if b != s[0] {
				return ""
			}
		}
		return "all sampled bytes identical"
	},
	func(s []byte) string {
		words, repeats := 0, 0
		var prev uint32
		for i := 0; i+4 <= len(s); i += 4 {
			w := binary.BigEndian.Uint32(s[i:])
			if words > 0 && w == prev {
				repeats++
			}
			prev, words = w, words+1
		}
		if words > 1 && repeats > (words-1)*3/4 {
			return "32-bit words repeating excessively"
		}
		return ""
	},
	func(s []byte) string {
		var seen [256]bool
		distinct := 0
		for _, b := range s {
			if !seen[b] {
				seen[b] = true
				distinct++
			}
		}
		if distinct < 8 {
			return fmt.Sprintf("only %d distinct byte values", distinct)
		}
		return ""
	},
}

// CheckSource samples the entropy source once before it is used for deals.
// It cannot prove randomness, only catch a disconnected or stuck device.
func CheckSource(r io.Reader, h *Health) error {
	sample := make([]byte, 256)
	if _, err := io.ReadFull(r, sample); err != nil {
		return fmt.Errorf("entropy source read failed: %w", err)
	}

	for _, check := range sampleChecks {
		if problem := check(sample); problem != "" {
			return errors.New("entropy source appears stuck: " + problem)
		}
	}

	if h != nil {
		h.mu.Lock()
		h.last = binary.BigEndian.Uint32(sample[len(sample)-4:])
		h.repeats = 0
		h.mu.Unlock()
	}
	return nil
}

// Watch samples r every interval until ctx is done. A read error or a run of
// identical samples marks the source unhealthy; a fresh sample marks it
// healthy again.
func (h *Health) Watch(ctx context.Context, r io.Reader, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var buf [4]byte
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		_, err := io.ReadFull(r, buf[:])

		h.mu.Lock()
		switch {
		case err != nil:
			h.set(false, "entropy source read failed: "+err.Error())
		default:
			w := binary.BigEndian.Uint32(buf[:])
			if w == h.last {
				h.repeats++
			} else {
				h.repeats = 0
			}
			h.last = w

			if h.repeats >= stuckRepeats {
				h.set(false, "entropy source appears stuck: repeating identical 32-bit outputs")
			} else {
				h.set(true, "")
			}
		}
		h.mu.Unlock()
	}
}
