package models

import "strings"

// Card is a single playing card in "<Value> of <Suit>" form, for example
// "Ace of Spades". Comparing two cards is plain string comparison.
type Card string

// Joker is the extra card added by deck templates; it has no suit and
// sorts after every standard card.
const Joker Card = "Joker"

// Suits lists the four suits in deck order.
var Suits = []string{"Spades", "Clubs", "Hearts", "Diamonds"}

// Values lists the thirteen card values in deck order.
var Values = []string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

var (
	suitRank  = rankIndex(Suits)
	valueRank = rankIndex(Values)
)

func rankIndex(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, name := range names {
		m[name] = i + 1
	}
	return m
}

// New builds a card from its value and suit.
func New(value, suit string) Card {
	return Card(value + " of " + suit)
}

// Value returns the value half of the card, or "" when the card does not
// have the "<Value> of <Suit>" form.
func (c Card) Value() string {
	value, _, ok := strings.Cut(string(c), " of ")
	if !ok {
		return ""
	}
	return value
}

// Suit returns the suit half of the card, or "" when the card does not
// have the "<Value> of <Suit>" form.
func (c Card) Suit() string {
	_, suit, ok := strings.Cut(string(c), " of ")
	if !ok {
		return ""
	}
	return suit
}

// Valid reports whether the card names a standard value and suit.
// Jokers and malformed strings are not valid.
func (c Card) Valid() bool {
	return valueRank[c.Value()] > 0 && suitRank[c.Suit()] > 0
}

// Order returns the card's position in a fresh deck, suit-major then
// value-minor, from 0 to 51. Cards outside the standard vocabulary all
// order after the last standard card.
func (c Card) Order() int {
	s := suitRank[c.Suit()]
	v := valueRank[c.Value()]
	if s == 0 || v == 0 {
		return len(Suits) * len(Values)
	}
	return (s-1)*len(Values) + (v - 1)
}
