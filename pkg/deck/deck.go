package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"jokerpoker/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// StandardSize is the number of non-joker cards in a deck
const StandardSize = NumRanks * NumSuits

// Deck represents a playing deck: the 52 standard cards plus a number of jokers
type Deck struct {
	Cards  Hand `json:"cards"`
	jokers int
	rng    rng.Generator
}

// New returns a new deck of cards with the specified number of jokers.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(jokers int) *Deck {
	if jokers < 0 {
		jokers = 0
	}

	d := &Deck{
		jokers: jokers,
	}

	d.buildDeck()
	return d
}

// SetSeed will make every subsequent shuffle reproducible
// This should only be used by tests and replays.
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.NewSeeded(seed)
}

// SetGenerator replaces the random source used when shuffling
func (d *Deck) SetGenerator(g rng.Generator) {
	d.rng = g
}

// Size returns the total number of cards of a full deck, including jokers
func (d *Deck) Size() int {
	return StandardSize + d.jokers
}

// Jokers returns how many jokers the deck was built with
func (d *Deck) Jokers() int {
	return d.jokers
}

func (d *Deck) buildDeck() {
	cards := make(Hand, 0, d.Size())
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	for i := 0; i < d.jokers; i++ {
		cards = append(cards, Joker())
	}

	d.Cards = cards
}

// Shuffle rebuilds the full deck and shuffles it
// Without a seed or generator, crypto/rand is used.
func (d *Deck) Shuffle() {
	d.buildDeck()

	if d.rng == nil {
		d.rng = rng.Crypto{}
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal draws n cards into a new hand
// The deck is left untouched if it cannot cover the deal.
func (d *Deck) Deal(n int) (Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	hand := make(Hand, n)
	copy(hand, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
