package game

import "jokerpoker/pkg/deck"

// Player is an individual at the table
type Player struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Chips int       `json:"chips"`
	Hand  deck.Hand `json:"hand,omitempty"`

	// DealtIn is true if the player was dealt a hand this round
	DealtIn bool `json:"dealtIn"`
	// InRound is true if the player was dealt in and has not folded
	InRound bool `json:"inRound"`
	// HasActed is true once the player has acted in the current phase
	HasActed bool `json:"hasActed"`
	// Bet is how much the player has put in the pot this round
	Bet int `json:"bet"`
	// Discards is the number of cards the player asked to exchange
	Discards int `json:"discards"`

	Wins        int `json:"wins"`
	HandsPlayed int `json:"handsPlayed"`
}

// NewPlayer returns a new player
func NewPlayer(id int64, name string, chips int) Player {
	return Player{
		ID:    id,
		Name:  name,
		Chips: chips,
	}
}

// PlaceBet moves the amount from the player's chips into play
// The amount placed is returned.
func (p *Player) PlaceBet(amount int) (int, error) {
	if err := p.RemoveChips(amount); err != nil {
		return 0, err
	}

	p.Bet += amount
	return amount, nil
}

// AddChips adds chips to the player's stack
func (p *Player) AddChips(amount int) {
	p.Chips += amount
}

// RemoveChips removes chips from the player's stack
func (p *Player) RemoveChips(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	if amount > p.Chips {
		return InsufficientChipsError{
			Needed:    amount,
			Available: p.Chips,
		}
	}

	p.Chips -= amount
	return nil
}

// AddWin records a won round
func (p *Player) AddWin() {
	p.Wins++
}

// AddHandPlayed records a dealt hand
func (p *Player) AddHandPlayed() {
	p.HandsPlayed++
}

// WinRate returns the ratio of won rounds to hands played
func (p Player) WinRate() float64 {
	if p.HandsPlayed == 0 {
		return 0
	}

	return float64(p.Wins) / float64(p.HandsPlayed)
}

// IsBroke returns true if the player has no chips left
func (p Player) IsBroke() bool {
	return p.Chips <= 0
}

// canAct returns true if the player still owes an action in the current phase
func (p Player) canAct() bool {
	return p.InRound && !p.HasActed
}

// clone returns a copy of the player that shares no memory with the original
func (p Player) clone() Player {
	p.Hand = p.Hand.Clone()
	return p
}

// resetForRound clears everything that only lives for a single round
func (p *Player) resetForRound() {
	p.Hand = nil
	p.DealtIn = false
	p.InRound = false
	p.HasActed = false
	p.Bet = 0
	p.Discards = 0
}
