package mux

import (
	"errors"
	"fmt"
	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/game"
	"jokerpoker/pkg/model"
	"jokerpoker/pkg/poker"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
)

// maxCards is the most cards a single hand may hold
const maxCards = deck.StandardSize + game.MaxJokers

type evaluatePayload struct {
	Cards string `json:"cards"`
}

type handResponse struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Cards string `json:"cards"`
}

func newHandResponse(cards deck.Hand) handResponse {
	rank := poker.Evaluate(cards)
	return handResponse{
		Rank:  int(rank),
		Name:  rank.String(),
		Cards: deck.CardsToString(cards),
	}
}

func parseHand(s string) (deck.Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, err
	}

	if len(cards) > maxCards {
		return nil, fmt.Errorf("a hand cannot hold more than %d cards", maxCards)
	}

	return cards, nil
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload evaluatePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		cards, err := parseHand(payload.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(cards))
	}
}

type showdownPayload struct {
	Hands map[string]string `json:"hands"`
	// Record adds the outcome to each player's stats
	Record bool `json:"record"`
}

type showdownResponse struct {
	Winners     []string                `json:"winners"`
	WinningHand string                  `json:"winningHand"`
	Hands       map[string]handResponse `json:"hands"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload showdownPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if n := len(payload.Hands); n < game.MinPlayers || n > game.MaxPlayers {
			writeJSONError(w, http.StatusBadRequest, game.PlayerCountError{
				Min: game.MinPlayers,
				Max: game.MaxPlayers,
				Got: n,
			})
			return
		}

		given := make([]string, 0, len(payload.Hands))
		for name := range payload.Hands {
			given = append(given, name)
		}
		sort.Strings(given)

		names, err := game.CheckPlayerNames(given)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		resp := showdownResponse{
			Winners: []string{},
			Hands:   make(map[string]handResponse, len(names)),
		}

		best := -1
		for i, name := range names {
			cards, err := parseHand(payload.Hands[given[i]])
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("%s: %w", name, err))
				return
			}

			hand := newHandResponse(cards)
			resp.Hands[name] = hand

			switch {
			case hand.Rank > best:
				best = hand.Rank
				resp.Winners = append(resp.Winners[:0], name)
				resp.WinningHand = hand.Name
			case hand.Rank == best:
				resp.Winners = append(resp.Winners, name)
			}
		}

		sort.Strings(resp.Winners)

		if payload.Record {
			winners := make(map[string]bool, len(resp.Winners))
			for _, name := range resp.Winners {
				winners[name] = true
			}

			// the request carries no chip stacks, so the stored ones are kept
			results := make([]model.RoundResult, 0, len(names))
			for _, name := range names {
				results = append(results, model.RoundResult{Name: name, Won: winners[name]})
			}

			if err := m.stats.RecordRound(r.Context(), results); err != nil {
				writeUserOrServerError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) getPlayerStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := m.stats.GetPlayerStats(r.Context(), mux.Vars(r)["name"])
		if err != nil {
			if errors.Is(err, model.ErrStatsNotFound) {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeUserOrServerError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
