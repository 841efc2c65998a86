package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"jokerpoker/pkg/game"
	"strconv"
	"strings"
)

var errBlankInput = errors.New("no input")

// prompter reads answers from the player, one line at a time
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *prompter) getInput(question string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", question)
	str, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || str == "") {
		return "", err
	}

	return strings.TrimSpace(str), nil
}

// getInt asks until the answer is an integer in [min, max]
// A blank answer returns defaultValue.
func (p *prompter) getInt(question string, min, max, defaultValue int) (int, error) {
	for {
		str, err := p.getInput(fmt.Sprintf("%s (%d–%d) [%d]", question, min, max, defaultValue))
		if err != nil {
			return 0, err
		}

		if str == "" {
			return defaultValue, nil
		}

		val, err := strconv.Atoi(str)
		if err != nil || val < min || val > max {
			_, _ = fmt.Fprintf(p.out, "please enter a number from %d to %d\n", min, max)
			continue
		}

		return val, nil
	}
}

// parseAction converts a command such as "r 50" into an action for the phase
func parseAction(playerID int64, phase game.Phase, line string) (game.Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return game.Action{}, errBlankInput
	}

	amount := 0
	if len(fields) > 1 {
		val, err := strconv.Atoi(fields[1])
		if err != nil {
			return game.Action{}, fmt.Errorf("invalid amount: %q", fields[1])
		}

		amount = val
	}

	a := game.Action{PlayerID: playerID, Amount: amount}
	if phase == game.PhaseDrawing {
		switch fields[0] {
		case "d", "draw":
			a.Type = game.ActionDraw
		case "s", "stand":
			a.Type = game.ActionDraw
			a.Amount = 0
		default:
			return game.Action{}, fmt.Errorf("unknown command: %q", fields[0])
		}

		return a, nil
	}

	switch fields[0] {
	case "c", "call":
		a.Type = game.ActionCall
	case "r", "raise":
		if len(fields) < 2 {
			return game.Action{}, errors.New("raise requires an amount, i.e., r 50")
		}

		a.Type = game.ActionRaise
	case "f", "fold":
		a.Type = game.ActionFold
	default:
		return game.Action{}, fmt.Errorf("unknown command: %q", fields[0])
	}

	return a, nil
}
