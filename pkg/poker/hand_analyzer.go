package poker

import (
	"jokerpoker/pkg/deck"
	"sort"
)

// fiveOfAKindJokers is the number of jokers that are a five of a kind on their own
const fiveOfAKindJokers = 5

// HandAnalyzer can analyze a hand that may contain jokers
// Jokers are wild: they may stand in for any rank and suit.
type HandAnalyzer struct {
	jokers int

	// histograms of the non-joker cards
	rankCounts [deck.NumRanks]int
	suitCounts [deck.NumSuits]int
	ranks      rankSet
	suitRanks  [deck.NumSuits]rankSet

	// non-zero rank counts, highest first
	groups []int

	hand HandRank
}

// Evaluate returns the best hand rank the cards can make
// It is total: any number of cards, including none, yields a hand rank.
func Evaluate(cards deck.Hand) HandRank {
	return NewHandAnalyzer(cards).GetHand()
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// Cards with an unknown rank or suit do not contribute to the analysis.
func NewHandAnalyzer(cards deck.Hand) *HandAnalyzer {
	h := &HandAnalyzer{}
	h.analyze(cards)
	h.hand = h.calculateHand()

	return h
}

func (h *HandAnalyzer) analyze(cards deck.Hand) {
	for _, card := range cards {
		if card.IsJoker {
			h.jokers++
			continue
		}

		suit := card.Suit.Index()
		if !card.Rank.Valid() || suit < 0 {
			continue
		}

		h.rankCounts[card.Rank]++
		h.suitCounts[suit]++
		h.ranks[card.Rank] = true
		h.suitRanks[suit][card.Rank] = true
	}

	groups := make([]int, 0, len(cards))
	for _, n := range h.rankCounts {
		if n > 0 {
			groups = append(groups, n)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	h.groups = groups
}

// calculateHand checks each hand rank from strongest to weakest, and returns the first one
// the jokers can complete
func (h *HandAnalyzer) calculateHand() HandRank {
	if h.jokers >= fiveOfAKindJokers {
		return FiveOfAKind
	}

	switch {
	case h.isFiveOfAKind():
		return FiveOfAKind
	case h.isRoyalFlush():
		return RoyalFlush
	case h.isStraightFlush():
		return StraightFlush
	case h.isFourOfAKind():
		return FourOfAKind
	case h.isFullHouse():
		return FullHouse
	case h.isFlush():
		return Flush
	case h.isStraight():
		return Straight
	case h.isThreeOfAKind():
		return ThreeOfAKind
	case h.isTwoPair():
		return TwoPair
	case h.isOnePair():
		return OnePair
	default:
		return HighCard
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() HandRank {
	return h.hand
}

// GetJokers returns the number of jokers in the hand
func (h *HandAnalyzer) GetJokers() int {
	return h.jokers
}

// GetRankCount returns how many non-joker cards of the rank are in the hand
func (h *HandAnalyzer) GetRankCount(rank deck.Rank) int {
	if !rank.Valid() {
		return 0
	}

	return h.rankCounts[rank]
}

// GetSuitCount returns how many non-joker cards of the suit are in the hand
func (h *HandAnalyzer) GetSuitCount(suit deck.Suit) int {
	i := suit.Index()
	if i < 0 {
		return 0
	}

	return h.suitCounts[i]
}

// GetGroups returns the sizes of the rank groups, largest first
func (h *HandAnalyzer) GetGroups() []int {
	return append([]int{}, h.groups...)
}

// highestCount returns the count of the most common rank, or 0 without natural cards
func (h *HandAnalyzer) highestCount() int {
	if len(h.groups) == 0 {
		return 0
	}

	return h.groups[0]
}

// secondHighestCount returns the count of the second most common rank, or 0
func (h *HandAnalyzer) secondHighestCount() int {
	if len(h.groups) < 2 {
		return 0
	}

	return h.groups[1]
}

// flushSuits returns the index of every suit that can be filled to five cards with jokers
func (h *HandAnalyzer) flushSuits() []int {
	suits := make([]int, 0, 1)
	for i, n := range h.suitCounts {
		if n+h.jokers >= straightSize {
			suits = append(suits, i)
		}
	}

	return suits
}

func (h *HandAnalyzer) isFiveOfAKind() bool {
	return h.highestCount()+h.jokers >= 5
}

func (h *HandAnalyzer) isRoyalFlush() bool {
	for _, suit := range h.flushSuits() {
		if h.suitRanks[suit].missing(royalWindow) <= h.jokers {
			return true
		}
	}

	return false
}

func (h *HandAnalyzer) isStraightFlush() bool {
	for _, suit := range h.flushSuits() {
		if canFormStraight(&h.suitRanks[suit], h.jokers) {
			return true
		}
	}

	return false
}

func (h *HandAnalyzer) isFourOfAKind() bool {
	return h.highestCount()+h.jokers >= 4
}

func (h *HandAnalyzer) isFullHouse() bool {
	c1, c2 := h.highestCount(), h.secondHighestCount()

	switch h.jokers {
	case 0:
		return c1 >= 3 && c2 >= 2
	case 1:
		return (c1 >= 3 && c2 >= 1) || (c1 >= 2 && c2 >= 2)
	case 2:
		return c1 >= 2 && c2 >= 1
	default:
		// three jokers fill the trips on their own
		return true
	}
}

func (h *HandAnalyzer) isFlush() bool {
	return len(h.flushSuits()) > 0
}

func (h *HandAnalyzer) isStraight() bool {
	return canFormStraight(&h.ranks, h.jokers)
}

func (h *HandAnalyzer) isThreeOfAKind() bool {
	return h.highestCount()+h.jokers >= 3
}

func (h *HandAnalyzer) isTwoPair() bool {
	if len(h.groups) < 2 {
		return false
	}

	c1, c2 := h.highestCount(), h.secondHighestCount()

	switch h.jokers {
	case 0:
		return c1 >= 2 && c2 >= 2
	case 1:
		return c1 >= 2 && c2 >= 1
	default:
		return true
	}
}

func (h *HandAnalyzer) isOnePair() bool {
	return h.highestCount()+h.jokers >= 2
}
