package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := New(2)

	assert.Equal(t, 54, deck.CardsLeft())
	assert.Equal(t, 54, deck.Size())
	assert.Equal(t, 2, deck.Jokers())

	assert.Equal(t, Card{Rank: Two, Suit: Hearts}, deck.Cards[0])
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, deck.Cards[51])
	assert.True(t, deck.Cards[52].IsJoker)
	assert.True(t, deck.Cards[53].IsJoker)

	assert.Equal(t, 52, New(-1).CardsLeft())
}

func TestDeck_Shuffle(t *testing.T) {
	unshuffled := New(2).HashCode()

	d1 := New(2)
	d1.SetSeed(1)
	d1.Shuffle()

	d2 := New(2)
	d2.SetSeed(1)
	d2.Shuffle()

	assert.Equal(t, d1.HashCode(), d2.HashCode())
	assert.NotEqual(t, unshuffled, d1.HashCode())

	// shuffling is a permutation: every standard card once, and both jokers
	seen := make(map[Card]int)
	jokers := 0
	for _, card := range d1.Cards {
		if card.IsJoker {
			jokers++
			continue
		}

		seen[card]++
	}

	assert.Equal(t, 2, jokers)
	assert.Equal(t, 52, len(seen))
	for card, n := range seen {
		assert.Equal(t, 1, n, card.String())
	}

	// a second shuffle starts from a full deck again
	_, _ = d1.Draw()
	d1.Shuffle()
	assert.Equal(t, 54, d1.CardsLeft())
}

func TestDeck_ShuffleWithCrypto(t *testing.T) {
	d := New(0)
	d.Shuffle()
	assert.Equal(t, 52, d.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	deck := New(0)

	assert.True(t, deck.CanDraw(52))
	assert.False(t, deck.CanDraw(53))

	for i := 0; i < 52; i++ {
		_, err := deck.Draw()
		assert.NoError(t, err)
	}

	assert.False(t, deck.CanDraw(1))

	card, err := deck.Draw()
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Equal(t, Card{}, card)
}

func TestDeck_Deal(t *testing.T) {
	d := New(1)

	hand, err := d.Deal(5)
	require.NoError(t, err)
	assert.Equal(t, "2h,3h,4h,5h,6h", hand.String())
	assert.Equal(t, 48, d.CardsLeft())

	_, err = d.Deal(49)
	assert.Equal(t, ErrEndOfDeck, err)
	assert.Equal(t, 48, d.CardsLeft())

	_, err = d.Deal(-1)
	assert.Error(t, err)

	hand, err = d.Deal(48)
	require.NoError(t, err)
	assert.Equal(t, 1, hand.Jokers())
	assert.Equal(t, 0, d.CardsLeft())
}
