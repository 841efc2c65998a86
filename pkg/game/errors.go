package game

import (
	"errors"
	"fmt"
)

// UserError is an error that is safe to show to a player
type UserError string

func (u UserError) Error() string {
	return string(u)
}

func newUserError(format string, a ...interface{}) UserError {
	return UserError(fmt.Sprintf(format, a...))
}

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = UserError("it is not your turn")

// ErrPlayerNotFound is returned when a player is not found in the game
var ErrPlayerNotFound = errors.New("player not found")

// ErrPlayerNotInRound is returned when a folded or sitting-out player tries to act
var ErrPlayerNotInRound = UserError("you are not in this round")

// ErrRoundInProgress is returned when a round is started while another is active
var ErrRoundInProgress = errors.New("round already in progress")

// ErrRoundNotInProgress is returned when an action is attempted without an active round
var ErrRoundNotInProgress = errors.New("round not in progress")

// ErrNotEnoughPlayers is returned when fewer than two players can be dealt in
var ErrNotEnoughPlayers = errors.New("need at least two players with chips")

// ErrEmptyDeck is returned when the deck cannot cover a deal
var ErrEmptyDeck = errors.New("deck is empty")

// ErrInvalidMinBet is returned when the minimum bet is not positive
var ErrInvalidMinBet = errors.New("minimum bet must be greater than zero")

// ErrInvalidStartingChips is returned when players would start without chips
var ErrInvalidStartingChips = errors.New("starting chips must be greater than zero")

// ErrNegativeAmount is returned when a chip amount is negative
var ErrNegativeAmount = UserError("amount cannot be negative")

// ErrBlankName is returned when a player has no name
var ErrBlankName = UserError("player name cannot be blank")

// DuplicateNameError is returned when two players share a name
type DuplicateNameError struct {
	Name string
}

func (d DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate player name: %q", d.Name)
}

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}

// JokerCountError is an error on the number of jokers in the deck
type JokerCountError struct {
	Min int
	Max int
	Got int
}

func (j JokerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d jokers, got %d", j.Min, j.Max, j.Got)
}

// BetRangeError is returned when a bet or raise is outside the allowed range
type BetRangeError struct {
	Min       int
	Max       int
	Attempted int
}

func (b BetRangeError) Error() string {
	return fmt.Sprintf("invalid bet amount: minimum %d, maximum %d, attempted %d", b.Min, b.Max, b.Attempted)
}

// DrawRangeError is returned when a player asks to discard too many cards
type DrawRangeError struct {
	Max       int
	Attempted int
}

func (d DrawRangeError) Error() string {
	return fmt.Sprintf("invalid draw: you may discard 0–%d cards, attempted %d", d.Max, d.Attempted)
}

// InsufficientChipsError is returned when a player cannot cover an amount
type InsufficientChipsError struct {
	Needed    int
	Available int
}

func (i InsufficientChipsError) Error() string {
	return fmt.Sprintf("insufficient chips: needed %d, had %d", i.Needed, i.Available)
}

// IsFatal returns true if the error means the game cannot continue
func IsFatal(err error) bool {
	return errors.Is(err, ErrEmptyDeck)
}

// CanRetry returns true if the player can correct the action and try again
func CanRetry(err error) bool {
	var betRange BetRangeError
	var drawRange DrawRangeError
	var chips InsufficientChipsError
	var userErr UserError

	return errors.As(err, &betRange) ||
		errors.As(err, &drawRange) ||
		errors.As(err, &chips) ||
		errors.As(err, &userErr)
}
