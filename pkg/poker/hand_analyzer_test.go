package poker

import (
	"fmt"
	"jokerpoker/pkg/deck"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		cards string
		want  HandRank
	}{
		// five of a kind
		{"*,*,*,*,*", FiveOfAKind},
		{"14h,*,*,*,*", FiveOfAKind},
		{"14h,14d,14c,14s,*", FiveOfAKind},
		{"14h,14d,14c,*,*", FiveOfAKind},
		{"2c,2d,*,*,*", FiveOfAKind},

		// royal flush
		{"10h,11h,12h,13h,14h", RoyalFlush},
		{"14s,13s,12s,11s,10s", RoyalFlush},
		{"10h,11h,12h,13h,*", RoyalFlush},
		{"10h,11h,12h,*,*", RoyalFlush},
		{"14d,*,12d,*,10d", RoyalFlush},

		// straight flush
		{"5h,6h,7h,8h,9h", StraightFlush},
		{"5h,6h,7h,8h,*", StraightFlush},
		{"14h,2h,3h,4h,5h", StraightFlush},
		{"14c,2c,3c,*,5c", StraightFlush},
		{"9d,10d,11d,12d,13d", StraightFlush},
		{"3s,7s,*,*,5s", StraightFlush},

		// four of a kind
		{"14h,14d,14c,14s,13h", FourOfAKind},
		{"14h,14d,14c,13h,*", FourOfAKind},
		{"14h,14d,13h,*,*", FourOfAKind},
		{"2c,9d,*,*,*", FourOfAKind},

		// full house
		{"14h,14d,14c,13h,13d", FullHouse},
		{"14h,14d,13h,13d,*", FullHouse},
		{"2h,2d,2c,3s,3h", FullHouse},

		// flush
		{"2h,5h,7h,11h,13h", Flush},
		{"2h,5h,7h,11h,*", Flush},
		{"2s,9s,13s,*,*", Flush},

		// straight
		{"5h,6d,7c,8h,9s", Straight},
		{"5h,6d,7c,8h,*", Straight},
		{"5h,6d,*,8h,9h", Straight},
		{"14h,2d,3c,4h,5s", Straight},
		{"10h,11d,12c,13s,14h", Straight},
		{"14h,13d,*,11c,10s", Straight},
		{"2c,3d,*,*,6h", Straight},

		// three of a kind
		{"14h,14d,14c,13h,12d", ThreeOfAKind},
		{"14h,14d,13h,12d,*", ThreeOfAKind},
		{"14h,14d,13h,12h,*", ThreeOfAKind},
		{"2c,7d,13h,*,*", ThreeOfAKind},

		// two pair
		{"14h,14d,13h,13d,12h", TwoPair},
		{"3c,3d,9h,9s,14c", TwoPair},

		// pair
		{"14h,14d,13h,12h,11h", OnePair},
		{"14h,13d,11c,9h,*", OnePair},

		// high card
		{"14h,13d,12c,11h,9s", HighCard},
		{"2c,4d,6h,8s,10c", HighCard},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			assert.Equal(t, test.want, Evaluate(deck.CardsFromString(test.cards)))
		})
	}
}

func TestEvaluate_promotedByJoker(t *testing.T) {
	// two pair plus a joker is a full house, not two pair
	assert.Equal(t, TwoPair, Evaluate(deck.CardsFromString("14h,14d,13h,13d,12h")))
	assert.Equal(t, FullHouse, Evaluate(deck.CardsFromString("14h,14d,13h,13d,*")))

	// one pair plus a joker is three of a kind
	assert.Equal(t, OnePair, Evaluate(deck.CardsFromString("14h,14d,13h,12h,3c")))
	assert.Equal(t, ThreeOfAKind, Evaluate(deck.CardsFromString("14h,14d,13h,12h,*")))

	// three aces, an off-rank card, and a joker is only four of a kind
	assert.Equal(t, FourOfAKind, Evaluate(deck.CardsFromString("14h,14d,14c,13s,*")))
}

func TestEvaluate_jokerPlaceholderIgnored(t *testing.T) {
	// the placeholder rank/suit of a joker must never count as a natural card
	assert.Equal(t, Straight, Evaluate(deck.CardsFromString("5h,6d,*14c,8h,9h")))
	assert.Equal(t, OnePair, Evaluate(deck.CardsFromString("14h,13d,11c,9h,*2s")))
	assert.Equal(t, ThreeOfAKind, Evaluate(deck.CardsFromString("14h,14d,13h,12d,*13s")))
}

func TestEvaluate_wrapsPastAce(t *testing.T) {
	assert.Equal(t, Straight, Evaluate(deck.CardsFromString("12h,13d,14c,2s,3h")))
	assert.Equal(t, Straight, Evaluate(deck.CardsFromString("13h,14d,2c,3s,4h")))
	assert.Equal(t, Straight, Evaluate(deck.CardsFromString("13h,14d,2c,3s,*")))
	assert.Equal(t, Straight, Evaluate(deck.CardsFromString("11h,*,14c,2s,*")))
	assert.Equal(t, StraightFlush, Evaluate(deck.CardsFromString("12h,13h,14h,2h,3h")))

	// still needs five consecutive ranks
	assert.Equal(t, HighCard, Evaluate(deck.CardsFromString("12h,13d,14c,2s,4h")))
	assert.Equal(t, OnePair, Evaluate(deck.CardsFromString("12h,13d,3c,4s,*")))
}

func TestEvaluate_straightFlushInEitherTiedSuit(t *testing.T) {
	// hearts and spades both reach five with the jokers, only one of them makes the better hand
	assert.Equal(t, RoyalFlush, Evaluate(deck.CardsFromString("2h,7h,10s,11s,*,*,*")))
	assert.Equal(t, RoyalFlush, Evaluate(deck.CardsFromString("10s,11s,2h,7h,*,*,*")))
	assert.Equal(t, RoyalFlush, Evaluate(deck.CardsFromString("2h,3h,13s,14s,*,*,*")))
	assert.Equal(t, StraightFlush, Evaluate(deck.CardsFromString("2h,7h,5s,6s,*,*,*")))
	assert.Equal(t, StraightFlush, Evaluate(deck.CardsFromString("5s,6s,2h,7h,*,*,*")))
	assert.Equal(t, StraightFlush, Evaluate(deck.CardsFromString("2c,9c,5d,6d,*,*,*")))
}

func TestEvaluate_degenerate(t *testing.T) {
	assert.Equal(t, HighCard, Evaluate(nil))
	assert.Equal(t, HighCard, Evaluate(deck.Hand{}))
	assert.Equal(t, HighCard, Evaluate(deck.CardsFromString("14h,13h,12h")))
	assert.Equal(t, HighCard, Evaluate(deck.CardsFromString("2c")))
	assert.Equal(t, OnePair, Evaluate(deck.CardsFromString("2c,2d")))
	assert.Equal(t, OnePair, Evaluate(deck.CardsFromString("*,*")))
	assert.Equal(t, ThreeOfAKind, Evaluate(deck.CardsFromString("2c,*,*")))
	assert.Equal(t, FullHouse, Evaluate(deck.CardsFromString("*,*,*")))
	assert.Equal(t, FourOfAKind, Evaluate(deck.CardsFromString("*,*,*,*")))

	// cards that are not part of a deck are ignored rather than panicking
	bogus := deck.Hand{{Rank: 99, Suit: deck.Hearts}, {Rank: deck.Ace, Suit: "stars"}, deck.Joker()}
	assert.Equal(t, HighCard, Evaluate(bogus))
}

func TestEvaluate_moreThanFiveCards(t *testing.T) {
	assert.Equal(t, FullHouse, Evaluate(deck.CardsFromString("14c,2c,14d,5c,14h,2d,5h")))
	assert.Equal(t, StraightFlush, Evaluate(deck.CardsFromString("2h,3h,4h,5h,6h,14s,14d")))
	assert.Equal(t, Flush, Evaluate(deck.CardsFromString("2h,3h,4h,5h,9h,13s,13d")))
	assert.Equal(t, TwoPair, Evaluate(deck.CardsFromString("2h,2d,3h,3d,4s,4c")))
	assert.Equal(t, FullHouse, Evaluate(deck.CardsFromString("2h,2d,2s,3h,3d,3c")))
}

func TestEvaluate_equalCountsIgnoreOrder(t *testing.T) {
	hands := []string{
		"14h,14d,13h,13d,12h",
		"2c,2d,3h,3s,*",
		"9c,10d,11h,12s,13c",
		"4c,4d,7h,7s,7c",
		"2c,5d,8h,11s,*",
	}

	for _, s := range hands {
		cards := deck.CardsFromString(s)
		want := Evaluate(cards)

		permute(cards, 0, func(p deck.Hand) {
			assert.Equal(t, want, Evaluate(p), p.String())
		})
	}
}

func TestEvaluate_idempotent(t *testing.T) {
	cards := deck.CardsFromString("14h,14d,13h,*,2c")
	before := cards.String()

	first := Evaluate(cards)
	second := Evaluate(cards)

	assert.Equal(t, first, second)
	assert.Equal(t, before, cards.String())
}

func TestEvaluate_totality(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for size := 0; size <= 5; size++ {
		for jokers := 0; jokers <= size; jokers++ {
			for i := 0; i < 200; i++ {
				cards := randomHand(r, size-jokers)
				for j := 0; j < jokers; j++ {
					cards = append(cards, deck.Joker())
				}

				got := Evaluate(cards)
				assert.True(t, got.Valid(), fmt.Sprintf("%s => %d", cards, got))
			}
		}
	}
}

func TestEvaluate_monotonicInJokers(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 5000; i++ {
		cards := randomHand(r, 5)
		prev := Evaluate(cards)

		for _, pos := range r.Perm(5) {
			cards[pos] = deck.Joker()
			got := Evaluate(cards)
			if !assert.True(t, got >= prev, "%s: %s < %s", cards, got, prev) {
				return
			}

			prev = got
		}

		assert.Equal(t, FiveOfAKind, prev)
	}
}

func TestHandAnalyzer_getters(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("14h,14d,13h,*,2c"))

	assert.Equal(t, ThreeOfAKind, h.GetHand())
	assert.Equal(t, 1, h.GetJokers())
	assert.Equal(t, 2, h.GetRankCount(deck.Ace))
	assert.Equal(t, 0, h.GetRankCount(deck.Queen))
	assert.Equal(t, 0, h.GetRankCount(deck.Rank(20)))
	assert.Equal(t, 2, h.GetSuitCount(deck.Hearts))
	assert.Equal(t, 0, h.GetSuitCount(deck.Spades))
	assert.Equal(t, 0, h.GetSuitCount(deck.Suit("stars")))
	assert.Equal(t, []int{2, 1, 1}, h.GetGroups())
}

func Test_straightWindows(t *testing.T) {
	assert.Equal(t, deck.NumRanks, len(straightWindows))
	assert.Equal(t, straightWindow{deck.Two, deck.Three, deck.Four, deck.Five, deck.Six}, straightWindows[0])
	assert.Equal(t, straightWindow{deck.Queen, deck.King, deck.Ace, deck.Two, deck.Three}, straightWindows[10])
	assert.Equal(t, straightWindow{deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five}, straightWindows[12])
	assert.Equal(t, straightWindow{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace}, royalWindow)
	assert.Equal(t, royalWindow, straightWindows[8])
}

func Test_canFormStraight(t *testing.T) {
	var ranks rankSet
	assert.False(t, canFormStraight(&ranks, 4))

	ranks[deck.Seven] = true
	assert.True(t, canFormStraight(&ranks, 4))
	assert.False(t, canFormStraight(&ranks, 3))

	ranks[deck.Nine] = true
	ranks[deck.Jack] = true
	assert.True(t, canFormStraight(&ranks, 2))
	assert.False(t, canFormStraight(&ranks, 1))

	var wrap rankSet
	wrap[deck.King] = true
	wrap[deck.Ace] = true
	wrap[deck.Two] = true
	assert.True(t, canFormStraight(&wrap, 2))
	assert.False(t, canFormStraight(&wrap, 1))
}

func randomHand(r *rand.Rand, n int) deck.Hand {
	d := deck.New(0)
	d.SetSeed(r.Int63())
	d.Shuffle()

	cards, err := d.Deal(n)
	if err != nil {
		panic(err)
	}

	return cards
}

func permute(cards deck.Hand, k int, fn func(deck.Hand)) {
	if k == len(cards) {
		fn(cards.Clone())
		return
	}

	for i := k; i < len(cards); i++ {
		cards[k], cards[i] = cards[i], cards[k]
		permute(cards, k+1, fn)
		cards[k], cards[i] = cards[i], cards[k]
	}
}
