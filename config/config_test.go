package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.StorePath != "decks.db" {
		t.Errorf("StorePath = %q, want %q", cfg.StorePath, "decks.db")
	}
	if cfg.DeckFile != "deck.bin" {
		t.Errorf("DeckFile = %q, want %q", cfg.DeckFile, "deck.bin")
	}
	if cfg.DeckName != "table" {
		t.Errorf("DeckName = %q, want %q", cfg.DeckName, "table")
	}
	if cfg.HandSize != 5 {
		t.Errorf("HandSize = %d, want 5", cfg.HandSize)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.TemplatePath != "" {
		t.Errorf("TemplatePath = %q, want empty", cfg.TemplatePath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DECKHAND_STORE", "/tmp/other.db")
	t.Setenv("DECKHAND_DECK", "bridge")
	t.Setenv("DECKHAND_HAND_SIZE", "13")
	t.Setenv("DECKHAND_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.StorePath != "/tmp/other.db" {
		t.Errorf("StorePath = %q, want %q", cfg.StorePath, "/tmp/other.db")
	}
	if cfg.DeckName != "bridge" {
		t.Errorf("DeckName = %q, want %q", cfg.DeckName, "bridge")
	}
	if cfg.HandSize != 13 {
		t.Errorf("HandSize = %d, want 13", cfg.HandSize)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
}

func TestLoadRejectsBadInteger(t *testing.T) {
	t.Setenv("DECKHAND_HAND_SIZE", "plenty")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a non-numeric hand size")
	}
}
