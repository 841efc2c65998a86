package model

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrStatsNotFound is returned when a player has no recorded rounds
var ErrStatsNotFound = errors.New("player stats not found")

// ErrInvalidName is returned when stats are requested or recorded without a player name
var ErrInvalidName = UserError("player name cannot be blank")

// UserError is an error that is safe to show to the user
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// PlayerStats is a record in the `player_stats` table
type PlayerStats struct {
	Name        string    `json:"name"`
	Wins        int       `json:"wins"`
	HandsPlayed int       `json:"handsPlayed"`
	Chips       int       `json:"chips"`
	Updated     time.Time `json:"updated"`
}

// WinRate returns the ratio of wins to hands played
func (p PlayerStats) WinRate() float64 {
	if p.HandsPlayed == 0 {
		return 0
	}

	return float64(p.Wins) / float64(p.HandsPlayed)
}

// RoundResult is the outcome of a single round for a single player
type RoundResult struct {
	Name string `json:"name"`
	Won  bool   `json:"won"`
	// Chips is the player's stack after the round was settled
	// It is only stored when UpdateChips is set; otherwise the recorded stack is left alone.
	Chips       int  `json:"chips"`
	UpdateChips bool `json:"updateChips"`
}

// StatsStore persists player statistics across games
type StatsStore interface {
	// RecordRound adds a hand played (and a win, if applicable) for each result
	RecordRound(ctx context.Context, results []RoundResult) error

	// GetPlayerStats returns the stats for the named player
	// ErrStatsNotFound is returned if the player has not played a round
	GetPlayerStats(ctx context.Context, name string) (*PlayerStats, error)
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}

	return name, nil
}
