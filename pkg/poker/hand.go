package poker

import (
	"fmt"
	"strings"
)

// HandRank is the classification of a poker hand, i.e., royal flush
// Values are ordered from weakest to strongest and can be compared directly.
type HandRank int

// Constants for hand rank
const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveOfAKind // requires at least one joker
)

// HandRanks lists every hand rank from weakest to strongest
var HandRanks = []HandRank{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
	RoyalFlush,
	FiveOfAKind,
}

// String returns the string representation of a hand rank
func (h HandRank) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	case FiveOfAKind:
		return "Five of a kind"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// Valid returns true if h is one of the known hand ranks
func (h HandRank) Valid() bool {
	return h >= HighCard && h <= FiveOfAKind
}

// MarshalText encodes the hand rank as its name
func (h HandRank) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("unknown hand: %d", h)
	}

	return []byte(h.String()), nil
}

// UnmarshalText decodes a hand rank from its name (case-insensitive)
func (h *HandRank) UnmarshalText(text []byte) error {
	for _, rank := range HandRanks {
		if strings.EqualFold(rank.String(), string(text)) {
			*h = rank
			return nil
		}
	}

	return fmt.Errorf("unknown hand: %q", string(text))
}
