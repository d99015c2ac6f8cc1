package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lost-woods/handodds/src/odds"
	"github.com/lost-woods/handodds/src/rng"
)

type Handlers struct {
	r      io.Reader
	health *rng.Health
	log    *zap.SugaredLogger
	limits Limits
}

func NewHandlers(r io.Reader, h *rng.Health, log *zap.SugaredLogger, limits Limits) *Handlers {
	return &Handlers{r: r, health: h, log: log, limits: limits}
}

func (h *Handlers) rngOK(c *gin.Context) bool {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "RNG unhealthy: missing health monitor")
		return false
	}

	ok, msg, _ := h.health.Snapshot()
	if ok {
		return true
	}

	responder{c}.err(http.StatusServiceUnavailable, "RNG unhealthy: "+msg)
	return false
}

// inputErrors are engine failures caused by the request itself.
var inputErrors = []error{
	odds.ErrInvalidDeckSize,
	odds.ErrDeckTooLarge,
	odds.ErrCountsExceedDeck,
	odds.ErrInvalidHandSize,
	odds.ErrHandExceedsDeck,
	odds.ErrDegenerateDenominator,
	odds.ErrNilPredicate,
	odds.ErrUnknownCategory,
	odds.ErrInvalidRule,
	odds.ErrInvalidSimulation,
}

func statusFor(err error) int {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

/*
handleCalc runs one calculation and renders it:
1. Engine call, timed and counted per method
2. Input errors as 400 with the engine message verbatim
3. Request id only after success
4. JSON vs plaintext response
*/
func (h *Handlers) handleCalc(
	c *gin.Context,
	method, label string,
	work func() (p float64, payload gin.H, err error),
) {
	start := time.Now()
	p, payload, err := work()
	observe(method, start, err)

	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.log.Errorw("calculation failed", "method", method, "error", err)
			responder{c}.err(status, "Error computing probability.")
			return
		}
		responder{c}.err(status, err.Error())
		return
	}

	requestID, err := h.requestID(method)
	if err != nil {
		responder{c}.err(http.StatusInternalServerError, "Error generating request id.")
		return
	}

	out := gin.H{"probability": p, "percent": formatPercent(p)}
	for k, v := range payload {
		out[k] = v
	}
	responder{c}.ok(label+": "+formatPercent(p), out, requestID)
}

// requestID draws simulation ids from the entropy source so a failing device
// surfaces; exact calculations do not depend on it.
func (h *Handlers) requestID(method string) (string, error) {
	if method != methodSimulate {
		return uuid.NewString(), nil
	}

	id, err := uuid.NewRandomFromReader(h.r)
	if err != nil {
		if h.health != nil {
			h.health.Set(false, "error fetching random bytes for uuid: "+err.Error())
		}
		return "", err
	}
	return id.String(), nil
}

func CheckHeader(headerName, expectedValue string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth disabled if not configured
		if expectedValue == "" {
			c.Next()
			return
		}

		if c.GetHeader(headerName) != expectedValue {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
