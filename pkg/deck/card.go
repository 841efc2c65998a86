package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed from its string form
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
// No suit outranks another.
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// NumSuits is the number of distinct suits
const NumSuits = 4

// Suits lists every suit in a stable order
var Suits = [NumSuits]Suit{Hearts, Diamonds, Clubs, Spades}

// Index returns the position of the suit within Suits, or -1 for an unknown suit
func (s Suit) Index() int {
	switch s {
	case Hearts:
		return 0
	case Diamonds:
		return 1
	case Clubs:
		return 2
	case Spades:
		return 3
	default:
		return -1
	}
}

// Rank is the ordinal rank of a card, Two (0) through Ace (12)
type Rank int

// rank constants
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks
const NumRanks = 13

// RankFromValue converts a face value (2–14, where 14 is an Ace) into a Rank
func RankFromValue(value int) (Rank, bool) {
	if value < 2 || value > 14 {
		return 0, false
	}

	return Rank(value - 2), true
}

// Value returns the conventional face value of the rank (2–14, Ace is 14)
func (r Rank) Value() int {
	return int(r) + 2
}

// Valid returns true if the rank is one of the 13 known ranks
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(r.Value())
	}
}

// Card is an individual playing card
// When IsJoker is true, Rank and Suit are placeholders and carry no meaning.
type Card struct {
	Rank    Rank `json:"rank"`
	Suit    Suit `json:"suit"`
	IsJoker bool `json:"isJoker"`
}

// NewCard returns a standard card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Joker returns a joker card
func Joker() Card {
	return Card{Rank: Ace, Suit: Hearts, IsJoker: true}
}

func (c Card) String() string {
	if c.IsJoker {
		return "Joker"
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return fmt.Sprintf("%s%s", c.Rank, suit)
}

// Equal returns true if the cards are equal
// All jokers are equal to each other.
func (c Card) Equal(card Card) bool {
	if c.IsJoker || card.IsJoker {
		return c.IsJoker == card.IsJoker
	}

	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Less orders cards by rank, then by suit index. Jokers sort after every standard card.
func (c Card) Less(card Card) bool {
	if c.IsJoker != card.IsJoker {
		return card.IsJoker
	}

	if c.Rank != card.Rank {
		return c.Rank < card.Rank
	}

	return c.Suit.Index() < card.Suit.Index()
}

var cardRx = regexp.MustCompile(`(?i)^(\*)?(?:([0-9]|1[0-4])([cdhs]))?\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs].
// A joker is written as "*", optionally followed by a placeholder rank and suit.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	match := cardRx.FindStringSubmatch(s)
	if s == "" || match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	isJoker := match[1] == "*"
	if match[2] == "" {
		if !isJoker {
			return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
		}

		return Joker(), nil
	}

	value, err := strconv.Atoi(match[2])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	rank, ok := RankFromValue(value)
	if !ok {
		return Card{}, fmt.Errorf("%w: %q: rank out of range", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(match[3]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{
		Rank:    rank,
		Suit:    suit,
		IsJoker: isJoker,
	}, nil
}

// CardFromString is like ParseCard, but panics on an invalid card
// Intended for fixtures.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// ParseCards parses a comma separated list of cards
func ParseCards(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, cardString := range cardStrings {
		card, err := ParseCard(cardString)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString will return a hand of cards, panicking on invalid input
func CardsFromString(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
// A joker is always written as "*".
func CardToString(card Card) string {
	if card.IsJoker {
		return "*"
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank.Value(), suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
