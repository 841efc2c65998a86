package poker

import "jokerpoker/pkg/deck"

// straightSize is the number of consecutive ranks in a straight
const straightSize = 5

type straightWindow [straightSize]deck.Rank

// straightWindows contains one window per low rank. Ranks wrap past the ace,
// so Q-K-A-2-3 is a straight and the ace-low window is the wheel (A-2-3-4-5).
var straightWindows = buildStraightWindows()

// royalWindow is the ten-through-ace straight
var royalWindow = straightWindow{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace}

func buildStraightWindows() []straightWindow {
	windows := make([]straightWindow, 0, deck.NumRanks)
	for low := 0; low < deck.NumRanks; low++ {
		var w straightWindow
		for i := range w {
			w[i] = deck.Rank((low + i) % deck.NumRanks)
		}

		windows = append(windows, w)
	}

	return windows
}

// rankSet records which ranks are present
type rankSet [deck.NumRanks]bool

// missing returns how many ranks of the window are absent from the set
func (r *rankSet) missing(w straightWindow) int {
	n := 0
	for _, rank := range w {
		if !r[rank] {
			n++
		}
	}

	return n
}

// canFormStraight returns true if the ranks, plus up to {jokers} fill-ins, complete any straight
// At least one natural rank must land in the window.
func canFormStraight(ranks *rankSet, jokers int) bool {
	for _, w := range straightWindows {
		if n := ranks.missing(w); n <= jokers && n < straightSize {
			return true
		}
	}

	return false
}
