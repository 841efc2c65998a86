package game

// Options are options for creating a new joker poker game
type Options struct {
	StartingChips int // Default: 1000
	MinBet        int // Default: 10
	Jokers        int // 0–4, defaults to 2
	HandSize      int // Default: 5
	MaxDiscards   int // Default: 3
}

// player and joker limits
const (
	MinPlayers = 2
	MaxPlayers = 6
	MinJokers  = 0
	MaxJokers  = 4
)

// DefaultOptions returns the default options for a joker poker game
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		MinBet:        10,
		Jokers:        2,
		HandSize:      5,
		MaxDiscards:   3,
	}
}

// Validate checks the options
func (o Options) Validate() error {
	if o.Jokers < MinJokers || o.Jokers > MaxJokers {
		return JokerCountError{
			Min: MinJokers,
			Max: MaxJokers,
			Got: o.Jokers,
		}
	}

	if o.MinBet <= 0 {
		return ErrInvalidMinBet
	}

	if o.StartingChips <= 0 {
		return ErrInvalidStartingChips
	}

	if o.HandSize <= 0 {
		return newUserError("hand size must be greater than zero")
	}

	if o.MaxDiscards < 0 || o.MaxDiscards > o.HandSize {
		return newUserError("max discards must be between 0 and %d", o.HandSize)
	}

	return nil
}
