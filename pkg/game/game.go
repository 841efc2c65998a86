package game

import (
	"context"
	"fmt"
	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/model"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StatsRecorder receives the results of every settled round
type StatsRecorder interface {
	RecordRound(ctx context.Context, results []model.RoundResult) error
}

// Game drives a State with a shuffled deck, and reports on what happens
type Game struct {
	mu     sync.Mutex
	id     string
	state  State
	deck   *deck.Deck
	logger logrus.FieldLogger
	stats  StatsRecorder
	logs   []*LogMessage
}

// NewGame returns a new game for the players
func NewGame(logger logrus.FieldLogger, names []string, opts Options) (*Game, error) {
	state, err := NewState(names, opts)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New().String()
	return &Game{
		id:     id,
		state:  state,
		deck:   deck.New(opts.Jokers),
		logger: logger.WithField("gameId", id),
	}, nil
}

// ID returns the unique identifier of the game
func (g *Game) ID() string {
	return g.id
}

// SetDeck replaces the deck, i.e., with a seeded one for replays
func (g *Game) SetDeck(d *deck.Deck) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.deck = d
}

// SetSeed makes every shuffle of the game reproducible
func (g *Game) SetSeed(seed int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.deck.SetSeed(seed)
	g.logger.WithField("seed", seed).Info("deck is seeded")
}

// SetStatsRecorder sets where round results are recorded
func (g *Game) SetStatsRecorder(stats StatsRecorder) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stats = stats
}

// State returns a copy of the current state
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Clone()
}

// StartRound shuffles the deck and deals a new round
func (g *Game) StartRound(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	g.deck.Shuffle()
	next, err := StartRound(g.state, g.deck)
	if err != nil {
		return err
	}

	next.RoundID = uuid.New().String()
	g.state = next

	g.logger.WithFields(logrus.Fields{
		"round":   next.Round,
		"roundId": next.RoundID,
		"deck":    g.deck.HashCode(),
	}).Info("round started")
	g.log(newLogMessage(0, "round %d: each player is dealt %d cards, the minimum bet is %d", next.Round, next.Options.HandSize, next.CurrentBet))

	return nil
}

// Action performs the player's action
// When the action settles the round, the results are recorded with the StatsRecorder.
func (g *Game) Action(ctx context.Context, a Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	prev := g.state
	next, err := Transition(prev, a)
	if err != nil {
		g.logger.WithError(err).WithField("action", a.Type).WithField("playerId", a.PlayerID).Debug("action rejected")
		return err
	}

	g.state = next
	g.logAction(prev, next, a)

	if next.IsGameOver() {
		g.logShowdown(next)
		if err := g.recordStats(ctx, next); err != nil {
			g.logger.WithError(err).Error("could not record stats")
			return fmt.Errorf("round settled, but stats were not recorded: %w", err)
		}
	}

	return nil
}

// LogMessages drains the log messages since the last call
func (g *Game) LogMessages() []*LogMessage {
	g.mu.Lock()
	defer g.mu.Unlock()

	logs := g.logs
	g.logs = nil
	return logs
}

func (g *Game) log(lm *LogMessage) {
	g.logs = append(g.logs, lm)
}

func (g *Game) logAction(prev, next State, a Action) {
	p, _ := next.Player(a.PlayerID)
	before, _ := prev.Player(a.PlayerID)

	switch {
	case a.Type == ActionCall && !p.InRound:
		g.log(newLogMessage(p.ID, "{} could not cover %d and folded", prev.CurrentBet))
	case a.Type == ActionCall:
		g.log(newLogMessage(p.ID, "{} called %d", p.Bet-before.Bet))
	case a.Type == ActionRaise:
		g.log(newLogMessage(p.ID, "{} raised to %d", next.CurrentBet))
	case a.Type == ActionFold:
		g.log(newLogMessage(p.ID, "{} folded"))
	case a.Type == ActionDraw:
		g.log(newLogMessage(p.ID, "{} discarded %d", p.Discards))
	}

	if prev.Phase == PhaseBetting && next.Phase == PhaseDrawing {
		g.log(newLogMessage(0, "betting is complete, the pot is %d", next.Pot))
	}
}

func (g *Game) logShowdown(s State) {
	result := s.Result
	for _, p := range s.Players {
		if rank, ok := result.HandRanks[p.ID]; ok {
			g.log(newCardsLogMessage(p.ID, p.Hand, "{} shows %s", rank))
		}
	}

	for _, id := range result.WinnerIDs {
		g.log(newLogMessage(id, "{} won %d with %s", result.Payouts[id], result.WinningHand))
	}

	g.logger.WithFields(logrus.Fields{
		"roundId": s.RoundID,
		"winners": result.WinnerIDs,
		"hand":    result.WinningHand.String(),
		"pot":     result.PotWon,
	}).Info("round settled")
}

func (g *Game) recordStats(ctx context.Context, s State) error {
	if g.stats == nil {
		return nil
	}

	results := make([]model.RoundResult, 0, len(s.Players))
	for _, p := range s.Players {
		if !p.DealtIn {
			continue
		}

		results = append(results, model.RoundResult{
			Name:        p.Name,
			Won:         s.Result.IsWinner(p.ID),
			Chips:       p.Chips,
			UpdateChips: true,
		})
	}

	return g.stats.RecordRound(ctx, results)
}
