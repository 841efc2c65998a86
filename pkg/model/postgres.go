package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"jokerpoker/pkg/db"
)

const playerStatsColumns = `
player_stats.name,
player_stats.wins,
player_stats.hands_played,
player_stats.chips,
player_stats.updated`

// PostgresStatsStore keeps player statistics in the `player_stats` table
type PostgresStatsStore struct {
	db *sql.DB
}

// NewPostgresStatsStore returns a store backed by the database
// If database is nil, the shared db.Instance() is used.
func NewPostgresStatsStore(database *sql.DB) *PostgresStatsStore {
	if database == nil {
		database = db.Instance()
	}

	return &PostgresStatsStore{db: database}
}

// RecordRound upserts a row for each result in a single transaction
func (p *PostgresStatsStore) RecordRound(ctx context.Context, results []RoundResult) error {
	const query = `
INSERT INTO player_stats (name, wins, hands_played, chips)
VALUES ($1, $2, 1, $3)
ON CONFLICT (name) DO UPDATE
SET wins = player_stats.wins + EXCLUDED.wins,
    hands_played = player_stats.hands_played + 1,
    chips = CASE WHEN $4 THEN EXCLUDED.chips ELSE player_stats.chips END,
    updated = (NOW() AT TIME ZONE 'utc')`

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	for _, result := range results {
		name, err := normalizeName(result.Name)
		if err != nil {
			return err
		}

		wins := 0
		if result.Won {
			wins = 1
		}

		if _, err := tx.ExecContext(ctx, query, name, wins, result.Chips, result.UpdateChips); err != nil {
			return fmt.Errorf("could not record round for %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// GetPlayerStats returns the player's row
func (p *PostgresStatsStore) GetPlayerStats(ctx context.Context, name string) (*PlayerStats, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	query := `
SELECT ` + playerStatsColumns + `
FROM player_stats
WHERE name = $1`

	row := p.db.QueryRowContext(ctx, query, name)
	return getPlayerStatsByRow(row)
}

func getPlayerStatsByRow(row db.Scanner) (*PlayerStats, error) {
	var s PlayerStats
	if err := row.Scan(&s.Name, &s.Wins, &s.HandsPlayed, &s.Chips, &s.Updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatsNotFound
		}

		return nil, err
	}

	return &s, nil
}
