package game

import (
	"fmt"
	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/poker"
)

// StartRound deals a new round from the deck
// Every player with chips is dealt in. The deck is expected to be shuffled already.
func StartRound(s State, d *deck.Deck) (State, error) {
	if s.IsRoundInProgress() {
		return s, ErrRoundInProgress
	}

	eligible := 0
	for _, p := range s.Players {
		if !p.IsBroke() {
			eligible++
		}
	}

	if eligible < MinPlayers {
		return s, ErrNotEnoughPlayers
	}

	need := eligible * s.Options.HandSize
	if d == nil || !d.CanDraw(need) {
		return s, fmt.Errorf("could not deal %d cards: %w", need, ErrEmptyDeck)
	}

	next := s.Clone()
	next.Round++
	next.Pot = 0
	next.CurrentBet = next.Options.MinBet
	next.Result = nil

	for i := range next.Players {
		p := &next.Players[i]
		p.resetForRound()

		if p.IsBroke() {
			continue
		}

		hand, err := d.Deal(next.Options.HandSize)
		if err != nil {
			return s, fmt.Errorf("could not deal to %s: %w", p.Name, ErrEmptyDeck)
		}

		p.Hand = hand
		p.DealtIn = true
		p.InRound = true
	}

	next.Phase = PhaseBetting
	next.ActionAt = next.nextToAct(next.firstSeat())

	return next, nil
}

// Transition applies a single player action and returns the resulting state
// The input state is never modified. On error, the input state is returned unchanged.
func Transition(s State, a Action) (State, error) {
	if !s.IsRoundInProgress() {
		return s, ErrRoundNotInProgress
	}

	seat := s.seatOf(a.PlayerID)
	if seat < 0 {
		return s, ErrPlayerNotFound
	}

	if !s.Players[seat].InRound {
		return s, ErrPlayerNotInRound
	}

	if seat != s.ActionAt {
		return s, ErrNotYourTurn
	}

	next := s.Clone()

	var err error
	switch next.Phase {
	case PhaseBetting:
		err = next.applyBet(seat, a)
	case PhaseDrawing:
		err = next.applyDraw(seat, a)
	}

	if err != nil {
		return s, err
	}

	next.advance(seat)
	return next, nil
}

func (s *State) applyBet(seat int, a Action) error {
	p := &s.Players[seat]

	switch a.Type {
	case ActionCall:
		if p.Chips < s.CurrentBet {
			p.InRound = false
			break
		}

		amount, err := p.PlaceBet(s.CurrentBet)
		if err != nil {
			return err
		}

		s.Pot += amount
	case ActionRaise:
		if a.Amount < s.CurrentBet || a.Amount > p.Chips {
			return BetRangeError{
				Min:       s.CurrentBet,
				Max:       p.Chips,
				Attempted: a.Amount,
			}
		}

		amount, err := p.PlaceBet(a.Amount)
		if err != nil {
			return err
		}

		s.Pot += amount
		s.CurrentBet = a.Amount
	case ActionFold:
		p.InRound = false
	case ActionDraw:
		return newUserError("you cannot draw until betting is complete")
	default:
		return newUserError("unknown action: %q", a.Type)
	}

	p.HasActed = true
	return nil
}

func (s *State) applyDraw(seat int, a Action) error {
	p := &s.Players[seat]

	switch a.Type {
	case ActionDraw:
		if a.Amount < 0 || a.Amount > s.Options.MaxDiscards {
			return DrawRangeError{
				Max:       s.Options.MaxDiscards,
				Attempted: a.Amount,
			}
		}

		p.Discards = a.Amount
	case ActionCall, ActionRaise, ActionFold:
		return newUserError("betting is complete, you must draw")
	default:
		return newUserError("unknown action: %q", a.Type)
	}

	p.HasActed = true
	return nil
}

// advance moves the action to the next seat, or to the next phase when everyone has acted
func (s *State) advance(seat int) {
	if s.PlayersInRound() <= 1 {
		s.showdown()
		return
	}

	if next := s.nextToAct(seat + 1); next >= 0 {
		s.ActionAt = next
		return
	}

	switch s.Phase {
	case PhaseBetting:
		for i := range s.Players {
			s.Players[i].HasActed = false
		}

		s.Phase = PhaseDrawing
		s.ActionAt = s.nextToAct(s.firstSeat())
	case PhaseDrawing:
		s.showdown()
	}
}

// showdown evaluates every hand still in the round and pays out the pot
// Tied players split the pot. The remainder goes to the first winner in seat order.
func (s *State) showdown() {
	result := &ShowdownResult{
		HandRanks: make(map[int64]poker.HandRank),
		Payouts:   make(map[int64]int),
		PotWon:    s.Pot,
	}

	best := poker.HighCard
	winners := make([]int, 0, len(s.Players))
	for i, p := range s.Players {
		if !p.InRound {
			continue
		}

		rank := poker.Evaluate(p.Hand)
		result.HandRanks[p.ID] = rank

		switch {
		case len(winners) == 0 || rank > best:
			best = rank
			winners = append(winners[:0], i)
		case rank == best:
			winners = append(winners, i)
		}
	}

	result.WinningHand = best

	if len(winners) > 0 {
		share := s.Pot / len(winners)
		remainder := s.Pot % len(winners)

		for n, i := range winners {
			p := &s.Players[i]
			payout := share
			if n == 0 {
				payout += remainder
			}

			p.AddChips(payout)
			p.AddWin()

			result.WinnerIDs = append(result.WinnerIDs, p.ID)
			result.Payouts[p.ID] = payout
		}

		s.Pot = 0
	}

	for i := range s.Players {
		if s.Players[i].DealtIn {
			s.Players[i].AddHandPlayed()
		}

		s.Players[i].HasActed = false
	}

	s.Phase = PhaseGameOver
	s.ActionAt = -1
	s.Result = result
}
