package game

import (
	"fmt"
	"jokerpoker/pkg/poker"
	"strings"
)

// Phase represents the current phase of a round
type Phase int

const (
	// PhaseWaiting is before the first round has been dealt
	PhaseWaiting Phase = iota
	// PhaseBetting is when players call, raise, or fold
	PhaseBetting
	// PhaseDrawing is when players declare their discards
	PhaseDrawing
	// PhaseGameOver is after the showdown, until the next round is dealt
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseBetting:
		return "betting"
	case PhaseDrawing:
		return "drawing"
	case PhaseGameOver:
		return "gameOver"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ActionType is what a player wants to do
type ActionType string

// action types
const (
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
	ActionFold  ActionType = "fold"
	ActionDraw  ActionType = "draw"
)

// Action is a single player decision
// Amount is the raise-to amount for ActionRaise, or the number of discards for ActionDraw.
type Action struct {
	PlayerID int64      `json:"playerId"`
	Type     ActionType `json:"type"`
	Amount   int        `json:"amount"`
}

// ShowdownResult contains the results of a showdown
type ShowdownResult struct {
	WinnerIDs   []int64                  `json:"winnerIds"`
	WinningHand poker.HandRank           `json:"winningHand"`
	HandRanks   map[int64]poker.HandRank `json:"handRanks"`
	PotWon      int                      `json:"potWon"`
	Payouts     map[int64]int            `json:"payouts"`
}

// IsWinner returns true if the player won (or split) the pot
func (s *ShowdownResult) IsWinner(playerID int64) bool {
	for _, id := range s.WinnerIDs {
		if id == playerID {
			return true
		}
	}

	return false
}

// State is the complete state of a game
// It is a value: Transition and StartRound return a new State and never modify their input.
type State struct {
	RoundID    string   `json:"roundId"`
	Round      int      `json:"round"`
	Phase      Phase    `json:"phase"`
	Options    Options  `json:"options"`
	Players    []Player `json:"players"`
	Pot        int      `json:"pot"`
	CurrentBet int      `json:"currentBet"`
	// ActionAt is the seat of the player who must act next
	ActionAt int `json:"actionAt"`

	// Result is only populated after the showdown
	Result *ShowdownResult `json:"result,omitempty"`
}

// NewState returns the initial state for the players
// Player IDs are assigned by seat, starting with 1.
func NewState(names []string, opts Options) (State, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return State{}, PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: len(names),
		}
	}

	names, err := CheckPlayerNames(names)
	if err != nil {
		return State{}, err
	}

	if err := opts.Validate(); err != nil {
		return State{}, err
	}

	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(int64(i+1), name, opts.StartingChips)
	}

	return State{
		Phase:   PhaseWaiting,
		Options: opts,
		Players: players,
	}, nil
}

// CheckPlayerNames returns the names with surrounding whitespace removed
// Names that are blank, or that match an earlier name once trimmed, are rejected.
func CheckPlayerNames(names []string) ([]string, error) {
	trimmed := make([]string, len(names))
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrBlankName
		}

		if seen[name] {
			return nil, DuplicateNameError{Name: name}
		}

		seen[name] = true
		trimmed[i] = name
	}

	return trimmed, nil
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	players := make([]Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = p.clone()
	}
	s.Players = players

	if s.Result != nil {
		result := *s.Result
		result.WinnerIDs = append([]int64{}, s.Result.WinnerIDs...)

		result.HandRanks = make(map[int64]poker.HandRank, len(s.Result.HandRanks))
		for id, rank := range s.Result.HandRanks {
			result.HandRanks[id] = rank
		}

		result.Payouts = make(map[int64]int, len(s.Result.Payouts))
		for id, amount := range s.Result.Payouts {
			result.Payouts[id] = amount
		}

		s.Result = &result
	}

	return s
}

// IsRoundInProgress returns true while players still have to act
func (s State) IsRoundInProgress() bool {
	return s.Phase == PhaseBetting || s.Phase == PhaseDrawing
}

// IsGameOver returns true once the round has been settled
func (s State) IsGameOver() bool {
	return s.Phase == PhaseGameOver
}

// Player returns the player with the ID
func (s State) Player(id int64) (Player, bool) {
	if i := s.seatOf(id); i >= 0 {
		return s.Players[i], true
	}

	return Player{}, false
}

// CurrentPlayer returns the player who must act next
func (s State) CurrentPlayer() (Player, bool) {
	if !s.IsRoundInProgress() || s.ActionAt < 0 || s.ActionAt >= len(s.Players) {
		return Player{}, false
	}

	return s.Players[s.ActionAt], true
}

// PlayersInRound returns the number of players who have not folded
func (s State) PlayersInRound() int {
	n := 0
	for _, p := range s.Players {
		if p.InRound {
			n++
		}
	}

	return n
}

// TotalChips returns every chip at the table, including the pot
func (s State) TotalChips() int {
	total := s.Pot
	for _, p := range s.Players {
		total += p.Chips
	}

	return total
}

func (s State) seatOf(id int64) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}

	return -1
}

// nextToAct returns the first seat, starting at {from} and wrapping around, of a player who
// still owes an action. Returns -1 if everyone has acted.
func (s State) nextToAct(from int) int {
	n := len(s.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if s.Players[seat].canAct() {
			return seat
		}
	}

	return -1
}

// firstSeat is where the action starts for the round; it rotates each round
func (s State) firstSeat() int {
	if len(s.Players) == 0 || s.Round == 0 {
		return 0
	}

	return (s.Round - 1) % len(s.Players)
}
