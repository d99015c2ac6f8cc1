package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/handodds/src/deck"
	"github.com/lost-woods/handodds/src/odds"
)

type coverageRequest struct {
	DeckSize int        `json:"deck_size"`
	HandSize int        `json:"hand_size"`
	Rows     []deck.Row `json:"rows"`
}

type vsRequest struct {
	DeckSize int `json:"deck_size"`
	HandSize int `json:"hand_size"`
	deck.VS
}

type thresholdRequest struct {
	DeckSize int         `json:"deck_size"`
	HandSize int         `json:"hand_size"`
	Counts   []int       `json:"counts"`
	Rules    []odds.Rule `json:"rules"`
}

type simulateRequest struct {
	thresholdRequest
	Trials  int `json:"trials"`
	Batches int `json:"batches"`
}

func (h *Handlers) Coverage(c *gin.Context) {
	var req coverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !h.deckOK(c, req.DeckSize, req.HandSize) {
		return
	}

	summary := deck.Aggregate(req.DeckSize, req.Rows)
	issues := summary.Issues()
	if deck.HasOverflow(issues) {
		responder{c}.issues(http.StatusUnprocessableEntity, "The deck list holds more cards than the deck.", issues)
		return
	}

	h.handleCalc(c, methodCoverage, "Probability the key card is usable", func() (float64, gin.H, error) {
		p, err := summary.Coverage(req.HandSize)
		return p, gin.H{
			"deck_size":  req.DeckSize,
			"hand_size":  req.HandSize,
			"categories": summary.CoverageCounts(),
			"invalid":    summary.Invalid,
			"list_total": summary.ListTotal,
			"issues":     issues,
		}, err
	})
}

func (h *Handlers) VS(c *gin.Context) {
	req := vsRequest{DeckSize: deck.DefaultDeckSize, HandSize: deck.DefaultHandSize, VS: deck.DefaultVS()}
	if err := c.ShouldBindJSON(&req); err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !h.deckOK(c, req.DeckSize, req.HandSize) {
		return
	}

	issues := req.VS.Issues(req.DeckSize, req.HandSize)
	if deck.HasOverflow(issues) {
		responder{c}.issues(http.StatusUnprocessableEntity, "Listed cards exceed the deck size.", issues)
		return
	}

	h.handleCalc(c, methodVS, "Probability the VS key card is usable", func() (float64, gin.H, error) {
		p, err := req.VS.Probability(req.DeckSize, req.HandSize)
		return p, gin.H{
			"deck_size": req.DeckSize,
			"hand_size": req.HandSize,
			"other":     req.VS.Other(req.DeckSize),
			"issues":    issues,
		}, err
	})
}

func (h *Handlers) Threshold(c *gin.Context) {
	var req thresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid request body.")
		return
	}
	if !h.partitionOK(c, req) {
		return
	}

	h.handleCalc(c, methodThreshold, "Probability all rules are met", func() (float64, gin.H, error) {
		if err := odds.ValidateRules(len(req.Counts), req.Rules); err != nil {
			return 0, nil, err
		}
		p, err := odds.Threshold(req.DeckSize, req.HandSize, req.Counts, odds.AllOf(req.Rules...))
		return p, gin.H{
			"deck_size": req.DeckSize,
			"hand_size": req.HandSize,
			"rules":     len(req.Rules),
		}, err
	})
}

func (h *Handlers) Simulate(c *gin.Context) {
	req := simulateRequest{Trials: 10000, Batches: 10}
	if err := c.ShouldBindJSON(&req); err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Trials > h.limits.MaxTrials {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Trials should not exceed %d per request.", h.limits.MaxTrials))
		return
	}
	if !h.partitionOK(c, req.thresholdRequest) {
		return
	}
	if !h.rngOK(c) {
		return
	}

	h.handleCalc(c, methodSimulate, "Simulated probability all rules are met", func() (float64, gin.H, error) {
		if err := odds.ValidateRules(len(req.Counts), req.Rules); err != nil {
			return 0, nil, err
		}
		est, err := odds.Simulate(h.r, req.DeckSize, req.HandSize, req.Counts, odds.AllOf(req.Rules...),
			odds.SimOptions{Trials: req.Trials, Batches: req.Batches, Health: h.health})
		return est.P, gin.H{
			"deck_size": req.DeckSize,
			"hand_size": req.HandSize,
			"estimate":  est,
		}, err
	})
}

func (h *Handlers) Health(c *gin.Context) {
	if h.health == nil {
		responder{c}.err(http.StatusServiceUnavailable, "UNHEALTHY: missing health monitor")
		return
	}

	stats := h.health.Stats()
	checked := stats.CheckedAt.Format(time.RFC3339)
	if stats.OK {
		responder{c}.ok(
			fmt.Sprintf("OK (source %q, %d deals, %d failed, last checked %s)",
				stats.Source, stats.Deals, stats.FailedDeals, checked),
			gin.H{"health": stats},
			"health-check",
		)
		return
	}

	responder{c}.err(http.StatusServiceUnavailable,
		fmt.Sprintf("UNHEALTHY: %s (last checked %s)", stats.Reason, checked))
}
