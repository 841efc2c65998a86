package deck

import "sort"

// Hand represents an ordered collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Less(h[j])
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Jokers returns the number of jokers in the hand
func (h Hand) Jokers() int {
	n := 0
	for _, c := range h {
		if c.IsJoker {
			n++
		}
	}

	return n
}

// Discard will discard the specified card
// If max is provided and > 0, then limit to max discards
func (h *Hand) Discard(card Card, max ...int) int {
	count := 0
	m := len(*h)
	if len(max) == 1 && max[0] > 0 {
		m = max[0]
	}

	newHand := make(Hand, 0, len(*h))
	for _, c := range *h {
		if c.Equal(card) && count < m {
			count++
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return count
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a copy of the hand
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}

	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Sorted returns a sorted copy of the hand, leaving the original untouched
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Sort(h2)
	return h2
}
