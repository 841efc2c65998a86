package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	h := Hand{}
	h.AddCard(NewCard(Ace, Spades))
	h.AddCard(Joker())

	assert.Equal(t, 2, len(h))
	assert.True(t, h.HasCard(NewCard(Ace, Spades)))
	assert.True(t, h.HasCard(Joker()))
	assert.False(t, h.HasCard(NewCard(Ace, Hearts)))
	assert.Equal(t, 1, h.Jokers())
}

func TestHand_Discard(t *testing.T) {
	h := CardsFromString("2c,2c,3d,*,*")

	assert.Equal(t, 2, h.Discard(NewCard(Two, Clubs)))
	assert.Equal(t, "3d,*,*", h.String())

	assert.Equal(t, 1, h.Discard(Joker(), 1))
	assert.Equal(t, "3d,*", h.String())

	assert.Equal(t, 0, h.Discard(NewCard(King, Clubs)))
}

func TestHand_Sort(t *testing.T) {
	h := CardsFromString("*,14s,2d,2h,10c")
	sort.Sort(h)
	assert.Equal(t, "2h,2d,10c,14s,*", h.String())
}

func TestHand_Sorted(t *testing.T) {
	h := CardsFromString("13s,*,2d")
	sorted := h.Sorted()

	assert.Equal(t, "2d,13s,*", sorted.String())
	assert.Equal(t, "13s,*,2d", h.String())
}

func TestHand_Clone(t *testing.T) {
	h := CardsFromString("2c,3c")
	h2 := h.Clone()
	h2[0] = NewCard(Ace, Spades)

	assert.Equal(t, "2c,3c", h.String())
	assert.Nil(t, Hand(nil).Clone())
}
