package db

import (
	"database/sql"
	"errors"
	"fmt"

	"deckhand/deck"
	"deckhand/deckfile"
	"deckhand/models"

	_ "github.com/mattn/go-sqlite3"
)

// ErrDeckNotFound is returned when an operation names a deck the store
// has never seen.
var ErrDeckNotFound = errors.New("deck not found")

var db *sql.DB

func Initialize(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	return createTables()
}

func createTables() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS decks (
			name TEXT PRIMARY KEY,
			cards BLOB,
			shuffles INTEGER,
			updated_at TIMESTAMP
		)
	`)
	return err
}

// GetDeck returns the named deck. A deck that has never been stored is
// seeded with a fresh standard pack.
func GetDeck(name string) ([]models.Card, error) {
	var blob []byte
	err := db.QueryRow("SELECT cards FROM decks WHERE name = ?", name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		// Deck doesn't exist, seed it with a fresh pack
		cards := deck.New()
		if err := SaveDeck(name, cards); err != nil {
			return nil, fmt.Errorf("failed to create new deck: %w", err)
		}
		return cards, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	cards, err := deckfile.Decode(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decode deck %q: %w", name, err)
	}
	return cards, nil
}

// SaveDeck stores cards under name, inserting or replacing the deck's
// contents. The shuffle counter survives a save.
func SaveDeck(name string, cards []models.Card) error {
	blob, err := deckfile.Encode(cards)
	if err != nil {
		return fmt.Errorf("failed to encode deck %q: %w", name, err)
	}
	_, err = db.Exec(`
		INSERT INTO decks (name, cards, shuffles, updated_at)
		VALUES (?, ?, 0, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			cards = excluded.cards,
			updated_at = CURRENT_TIMESTAMP
	`, name, blob)
	if err != nil {
		return fmt.Errorf("failed to save deck: %w", err)
	}
	return nil
}

func IncrementShuffles(name string) error {
	res, err := db.Exec("UPDATE decks SET shuffles = shuffles + 1 WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to update shuffle count: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("deck %q: %w", name, ErrDeckNotFound)
	}
	return nil
}

func GetDeckStats(name string) (size, shuffles int, err error) {
	var blob []byte
	err = db.QueryRow("SELECT cards, shuffles FROM decks WHERE name = ?", name).Scan(&blob, &shuffles)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("deck %q: %w", name, ErrDeckNotFound)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get deck stats: %w", err)
	}

	cards, err := deckfile.Decode(blob)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode deck %q: %w", name, err)
	}
	return len(cards), shuffles, nil
}

func ListDecks() ([]string, error) {
	rows, err := db.Query("SELECT name FROM decks ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan deck name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func DeleteDeck(name string) error {
	res, err := db.Exec("DELETE FROM decks WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("deck %q: %w", name, ErrDeckNotFound)
	}
	return nil
}

func Close() {
	db.Close()
}
