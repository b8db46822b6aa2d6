package mux

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"golang.org/x/sync/errgroup"
	"handrank-server/pkg/deck"
	"handrank-server/pkg/poker"
)

type evaluateRequest struct {
	// ID is echoed back on websocket responses
	ID    string   `json:"id,omitempty"`
	Cards []string `json:"cards"`
}

type handResponse struct {
	Cards        []deck.Card    `json:"cards"`
	Category     poker.Category `json:"category"`
	CategoryRank int            `json:"categoryRank"`
	Description  string         `json:"description"`
	Primary      []deck.Card    `json:"primary"`
	Kickers      []deck.Card    `json:"kickers"`
}

func newHandResponse(cards []deck.Card, result poker.Result) handResponse {
	return handResponse{
		Cards:        cards,
		Category:     result.Category,
		CategoryRank: int(result.Category),
		Description:  result.Describe(),
		Primary:      result.Primary,
		Kickers:      result.Kickers,
	}
}

type compareRequest struct {
	A []string `json:"a"`
	B []string `json:"b"`
}

type compareResponse struct {
	Winner     string       `json:"winner"`
	Comparison int          `json:"comparison"`
	A          handResponse `json:"a"`
	B          handResponse `json:"b"`
}

type batchRequest struct {
	Hands [][]string `json:"hands"`
}

type batchResponse struct {
	Results []handResponse `json:"results"`

	// Best holds the index of every hand that no other hand beats
	Best []int `json:"best"`
}

// parseHand turns card codes into a hand that can be evaluated
// Unlike the evaluator, the boundary rejects duplicate cards.
func parseHand(codes []string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(codes...)
	if err != nil {
		return nil, err
	}

	if err := poker.ValidateSize(cards); err != nil {
		return nil, err
	}

	if err := deck.CheckUnique(cards); err != nil {
		return nil, err
	}

	return cards, nil
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		cards, err := parseHand(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		result := poker.Evaluate(cards)
		loggerFromRequest(r).WithField("cards", deck.CardsToString(cards)).WithField("category", result.Category).Debug("evaluated hand")
		writeJSON(w, http.StatusOK, newHandResponse(cards, result))
	}
}

func (m *Mux) postCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		a, err := parseHand(req.A)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand a: %w", err))
			return
		}

		b, err := parseHand(req.B)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand b: %w", err))
			return
		}

		resultA, resultB := poker.Evaluate(a), poker.Evaluate(b)
		cmp := poker.Compare(resultA, resultB)

		winner := "tie"
		if cmp > 0 {
			winner = "a"
		} else if cmp < 0 {
			winner = "b"
		}

		writeJSON(w, http.StatusOK, compareResponse{
			Winner:     winner,
			Comparison: cmp,
			A:          newHandResponse(a, resultA),
			B:          newHandResponse(b, resultB),
		})
	}
}

func (m *Mux) postBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if len(req.Hands) == 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("at least one hand is required"))
			return
		}

		if len(req.Hands) > m.config.maxBatch {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("a batch cannot have more than %d hands", m.config.maxBatch))
			return
		}

		hands := make([][]deck.Card, len(req.Hands))
		for i, codes := range req.Hands {
			cards, err := parseHand(codes)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand %d: %w", i, err))
				return
			}

			hands[i] = cards
		}

		results, err := evaluateAll(r, hands)
		if err != nil {
			loggerFromRequest(r).WithError(err).Warn("batch evaluation interrupted")
			writeJSONError(w, http.StatusServiceUnavailable, err)
			return
		}

		resp := batchResponse{
			Results: make([]handResponse, len(results)),
			Best:    bestHands(results),
		}

		for i, result := range results {
			resp.Results[i] = newHandResponse(hands[i], result)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// evaluateAll evaluates the hands in parallel, stopping early if the request goes away
func evaluateAll(r *http.Request, hands [][]deck.Card) ([]poker.Result, error) {
	results := make([]poker.Result, len(hands))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(runtime.NumCPU())

	for i := range hands {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = poker.Evaluate(hands[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// bestHands returns the index of every result that ties the strongest
func bestHands(results []poker.Result) []int {
	best := make([]int, 0, 1)
	for i, result := range results {
		if len(best) == 0 {
			best = append(best, i)
			continue
		}

		switch cmp := poker.Compare(result, results[best[0]]); {
		case cmp > 0:
			best = append(best[:0], i)
		case cmp == 0:
			best = append(best, i)
		}
	}

	return best
}
