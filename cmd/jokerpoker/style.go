package main

import (
	"fmt"
	"jokerpoker/pkg/deck"
	"jokerpoker/pkg/game"
	"jokerpoker/pkg/model"
	"strings"

	"github.com/pterm/pterm"
)

func cardString(c deck.Card) string {
	if c.IsJoker {
		return pterm.LightMagenta("🃏")
	}

	switch c.Suit {
	case deck.Hearts, deck.Diamonds:
		return pterm.LightRed(c.String())
	default:
		return c.String()
	}
}

func handString(h deck.Hand) string {
	cards := make([]string, len(h))
	for i, c := range h.Sorted() {
		cards[i] = cardString(c)
	}

	return strings.Join(cards, " ")
}

// playerPanel is the box for the player whose turn it is
func playerPanel(p game.Player) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	info := pterm.Sprintfln("Chips: %d", p.Chips)
	info += pterm.Sprintfln("Bet: %d", p.Bet)
	info += handString(p.Hand)

	title := pterm.LightCyan(p.Name)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(info)}
}

// tablePanel summarizes the round for everyone
func tablePanel(s game.State) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	info := pterm.Sprintfln("Round %d, %s", s.Round, s.Phase)
	info += pterm.Sprintfln("Pot: %d", s.Pot)
	info += pterm.Sprintf("Current bet: %d", s.CurrentBet)

	for _, p := range s.Players {
		status := pterm.LightGreen("in")
		switch {
		case !p.DealtIn:
			status = pterm.Cyan("sitting out")
		case !p.InRound:
			status = pterm.LightRed("folded")
		}

		info += pterm.Sprintf("\n%s: %d chips (%s)", p.Name, p.Chips, status)
	}

	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(info)}
}

func printTurn(s game.State, p game.Player) {
	_ = pterm.DefaultPanel.WithPanels(pterm.Panels{
		{tablePanel(s), playerPanel(p)},
	}).Render()
}

func printShowdown(s game.State) {
	data := pterm.TableData{{"Player", "Hand", "Cards", "Payout", "Chips"}}
	for _, p := range s.Players {
		rank, ok := s.Result.HandRanks[p.ID]
		if !ok {
			continue
		}

		data = append(data, []string{
			p.Name,
			rank.String(),
			handString(p.Hand),
			fmt.Sprintf("%d", s.Result.Payouts[p.ID]),
			fmt.Sprintf("%d", p.Chips),
		})
	}

	pterm.DefaultSection.Println("Showdown")
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	names := make([]string, 0, len(s.Result.WinnerIDs))
	for _, id := range s.Result.WinnerIDs {
		if p, ok := s.Player(id); ok {
			names = append(names, p.Name)
		}
	}

	pterm.Success.Printfln("%s won %d with %s", strings.Join(names, " and "), s.Result.PotWon, s.Result.WinningHand)
}

func printStats(stats []*model.PlayerStats) {
	data := pterm.TableData{{"Player", "Wins", "Hands", "Win rate", "Chips"}}
	for _, s := range stats {
		data = append(data, []string{
			s.Name,
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.HandsPlayed),
			fmt.Sprintf("%.0f%%", s.WinRate()*100),
			fmt.Sprintf("%d", s.Chips),
		})
	}

	pterm.DefaultSection.Println("Stats")
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
