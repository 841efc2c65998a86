package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"jokerpoker/internal/config"
	"jokerpoker/internal/util"
	"jokerpoker/pkg/db"
	"jokerpoker/pkg/game"
	"jokerpoker/pkg/model"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var seed = flag.Int64("seed", 0, "shuffle with a fixed seed (for replays)")
var rounds = flag.Int("rounds", 0, "stop after this many rounds (0 asks after each round)")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := cfg.ConfigureLogger(logrus.StandardLogger()); err != nil {
		logrus.WithError(err).Fatal("could not configure logger")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	in := newPrompter(os.Stdin, os.Stdout)
	ctx := context.Background()

	g, err := setup(in, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up the game")
	}

	stats := statsStore(cfg)
	g.SetStatsRecorder(stats)

	if err := play(ctx, in, g); err != nil && !errors.Is(err, io.EOF) {
		logrus.WithError(err).Fatal("game ended unexpectedly")
	}

	printFinalStats(ctx, g, stats)
	pterm.Println("Thank you for playing...")
}

func setup(in *prompter, cfg config.Config) (*game.Game, error) {
	pterm.DefaultHeader.Println("Joker Poker")

	opts := cfg.GameOptions()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	players, err := in.getInt("Number of players", game.MinPlayers, game.MaxPlayers, game.MinPlayers)
	if err != nil {
		return nil, err
	}

	opts.Jokers, err = in.getInt("Number of jokers", game.MinJokers, game.MaxJokers, opts.Jokers)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, players)
	for len(names) < players {
		i := len(names)
		name, err := in.getInput(fmt.Sprintf("Name of player %d", i+1))
		if err != nil {
			return nil, err
		}

		if name == "" {
			name = util.GetRandomName()
			pterm.Info.Printfln("Player %d is %s", i+1, pterm.LightCyan(name))
		}

		if _, err := game.CheckPlayerNames(append(names[:i:i], name)); err != nil {
			pterm.Error.Println(err)
			continue
		}

		names = append(names, name)
	}

	g, err := game.NewGame(logrus.StandardLogger(), names, opts)
	if err != nil {
		return nil, err
	}

	if *seed != 0 {
		g.SetSeed(*seed)
	}

	return g, nil
}

func play(ctx context.Context, in *prompter, g *game.Game) error {
	for round := 1; ; round++ {
		if err := g.StartRound(ctx); err != nil {
			if errors.Is(err, game.ErrNotEnoughPlayers) {
				pterm.Info.Println("Only one player has chips left")
				return nil
			}

			return err
		}

		if err := playRound(ctx, in, g); err != nil {
			return err
		}

		printShowdown(g.State())

		if *rounds > 0 {
			if round >= *rounds {
				return nil
			}

			continue
		}

		again, err := in.getInput("Play another round? (Y/n)")
		if err != nil {
			return err
		}

		if again != "" && strings.ToLower(again)[0] == 'n' {
			return nil
		}
	}
}

func playRound(ctx context.Context, in *prompter, g *game.Game) error {
	for {
		s := g.State()
		p, ok := s.CurrentPlayer()
		if !ok {
			return nil
		}

		printTurn(s, p)

		question := fmt.Sprintf("%s: (c)all %d, (r)aise <amount>, (f)old", p.Name, s.CurrentBet)
		if s.Phase == game.PhaseDrawing {
			question = fmt.Sprintf("%s: (d)raw <0–%d>, (s)tand", p.Name, s.Options.MaxDiscards)
		}

		line, err := in.getInput(question)
		if err != nil {
			return err
		}

		a, err := parseAction(p.ID, s.Phase, line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}

		if err := g.Action(ctx, a); err != nil {
			if game.CanRetry(err) {
				pterm.Error.Println(err)
				continue
			}

			return err
		}

		for _, lm := range g.LogMessages() {
			pterm.Info.Println(formatLogMessage(g.State(), lm))
		}
	}
}

// formatLogMessage replaces the {} placeholder with the player's name
func formatLogMessage(s game.State, lm *game.LogMessage) string {
	if len(lm.PlayerIDs) == 0 {
		return lm.Message
	}

	name := "someone"
	if p, ok := s.Player(lm.PlayerIDs[0]); ok {
		name = p.Name
	}

	return strings.Replace(lm.Message, "{}", name, 1)
}

// statsStore returns a postgres store if a DSN is configured, otherwise stats live in memory
func statsStore(cfg config.Config) model.StatsStore {
	if cfg.PGDSN == "" {
		return model.NewMemoryStatsStore()
	}

	dbh, err := db.Open(cfg.PGDSN)
	if err != nil {
		logrus.WithError(err).Warn("could not open database, stats are kept in memory")
		return model.NewMemoryStatsStore()
	}

	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	return model.NewPostgresStatsStore(dbh)
}

func printFinalStats(ctx context.Context, g *game.Game, store model.StatsStore) {
	var stats []*model.PlayerStats
	for _, p := range g.State().Players {
		s, err := store.GetPlayerStats(ctx, p.Name)
		if err != nil {
			if !errors.Is(err, model.ErrStatsNotFound) {
				logrus.WithError(err).WithField("player", p.Name).Warn("could not load stats")
			}

			continue
		}

		stats = append(stats, s)
	}

	if len(stats) > 0 {
		printStats(stats)
	}
}
