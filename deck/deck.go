// Package deck builds and manipulates decks of playing cards. Every
// operation treats its input as read-only and returns fresh slices, so
// callers can hold on to a deck across shuffles and deals without
// surprises.
package deck

import (
	"math/rand"
	"sort"

	"deckhand/models"
)

// Shuffler is the source of permutations for Shuffle and ShuffleWith.
// *rand.Rand satisfies it, so a seeded generator can be passed in
// directly when a run needs to be reproducible.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type shuffleFunc func(n int, swap func(i, j int))

func (f shuffleFunc) Shuffle(n int, swap func(i, j int)) {
	f(n, swap)
}

// Default shuffles with the shared math/rand generator.
var Default Shuffler = shuffleFunc(rand.Shuffle)

// Seeded returns a Shuffler that produces the same permutation for the
// same seed.
func Seeded(seed int64) Shuffler {
	return rand.New(rand.NewSource(seed))
}

// New returns the standard 52-card deck in canonical order: suits in
// models.Suits order, values in models.Values order within each suit.
func New() []models.Card {
	cards := make([]models.Card, 0, len(models.Suits)*len(models.Values))
	for _, suit := range models.Suits {
		for _, value := range models.Values {
			cards = append(cards, models.New(value, suit))
		}
	}
	return cards
}

// Shuffle returns a shuffled copy of cards. The input is left intact.
func Shuffle(cards []models.Card) []models.Card {
	return ShuffleWith(Default, cards)
}

// ShuffleWith shuffles a copy of cards using s for the permutation.
func ShuffleWith(s Shuffler, cards []models.Card) []models.Card {
	shuffled := make([]models.Card, len(cards))
	copy(shuffled, cards)
	s.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Contains reports whether card is present in cards.
func Contains(cards []models.Card, card models.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// Deal splits cards into a hand of handSize cards off the top and the
// remainder. Asking for more cards than the deck holds deals the whole
// deck; a negative handSize deals nothing. Both returned slices are
// copies.
func Deal(cards []models.Card, handSize int) (hand, rest []models.Card) {
	if handSize < 0 {
		handSize = 0
	}
	if handSize > len(cards) {
		handSize = len(cards)
	}
	hand = make([]models.Card, handSize)
	copy(hand, cards[:handSize])
	rest = make([]models.Card, len(cards)-handSize)
	copy(rest, cards[handSize:])
	return hand, rest
}

// NewHand deals handSize cards from a freshly shuffled standard deck.
func NewHand(handSize int) []models.Card {
	return NewHandWith(Default, handSize)
}

// NewHandWith is NewHand with the permutation drawn from s.
func NewHandWith(s Shuffler, handSize int) []models.Card {
	hand, _ := Deal(ShuffleWith(s, New()), handSize)
	return hand
}

// Sort returns a copy of cards in canonical deck order. Cards outside
// the standard 52, such as jokers, sort after the rest and keep their
// relative order.
func Sort(cards []models.Card) []models.Card {
	sorted := make([]models.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	return sorted
}
