package main

import (
	"fmt"
	"log"

	"deckhand/config"
	"deckhand/db"
	"deckhand/deck"
	"deckhand/deckfile"
	"deckhand/models"
	"deckhand/random"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := db.Initialize(cfg.StorePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cards, err := buildDeck(cfg)
	if err != nil {
		log.Fatalf("Failed to build deck: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			log.Fatalf("Failed to draw a shuffle seed: %v", err)
		}
	}
	log.Printf("Shuffling %q with seed %d", cfg.DeckName, seed)

	cards = deck.ShuffleWith(deck.Seeded(seed), cards)
	if err := db.SaveDeck(cfg.DeckName, cards); err != nil {
		log.Fatalf("Failed to save deck: %v", err)
	}
	if err := db.IncrementShuffles(cfg.DeckName); err != nil {
		log.Fatalf("Failed to record shuffle: %v", err)
	}

	hand, rest := deck.Deal(cards, cfg.HandSize)
	printHand(hand)

	if deck.Contains(hand, "Ace of Spades") {
		fmt.Println("The Ace of Spades is in your hand!")
	}

	if err := deckfile.Save(cfg.DeckFile, rest); err != nil {
		log.Fatalf("Failed to save remaining cards: %v", err)
	}
	loaded, err := deckfile.Load(cfg.DeckFile)
	if err != nil {
		log.Fatalf("Failed to load deck file: %v", err)
	}
	log.Printf("Wrote %d remaining cards to %s and read them back", len(loaded), cfg.DeckFile)

	size, shuffles, err := db.GetDeckStats(cfg.DeckName)
	if err != nil {
		log.Fatalf("Failed to get deck stats: %v", err)
	}
	log.Printf("Deck %q holds %d cards and has been shuffled %d times", cfg.DeckName, size, shuffles)
}

// buildDeck picks the deck for this run: a template file when one is
// configured, otherwise the named deck from the store.
func buildDeck(cfg config.Config) ([]models.Card, error) {
	if cfg.TemplatePath != "" {
		tmpl, err := deck.LoadTemplate(cfg.TemplatePath)
		if err != nil {
			return nil, err
		}
		return tmpl.Build(), nil
	}
	return db.GetDeck(cfg.DeckName)
}

func printHand(hand []models.Card) {
	fmt.Println("Your hand:")
	for i, c := range deck.Sort(hand) {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
}
