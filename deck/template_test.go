package deck

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"deckhand/models"
)

func TestStandardTemplateBuildsFullDeck(t *testing.T) {
	if !reflect.DeepEqual(Standard().Build(), New()) {
		t.Error("standard template does not build the canonical deck")
	}
}

func TestParseTemplateDefaults(t *testing.T) {
	tmpl, err := ParseTemplate([]byte("name: plain\n"))
	if err != nil {
		t.Fatalf("ParseTemplate returned error: %v", err)
	}

	if tmpl.Name != "plain" {
		t.Errorf("Name = %q, want %q", tmpl.Name, "plain")
	}
	if !reflect.DeepEqual(tmpl.Build(), New()) {
		t.Error("template with defaults does not build the canonical deck")
	}
}

func TestParseTemplateCustomDeck(t *testing.T) {
	data := []byte(`name: double pinochle corner
suits:
  - Hearts
  - Spades
values:
  - Nine
  - Ten
  - Ace
copies: 2
jokers: 1
`)
	tmpl, err := ParseTemplate(data)
	if err != nil {
		t.Fatalf("ParseTemplate returned error: %v", err)
	}

	cards := tmpl.Build()
	if len(cards) != 13 {
		t.Fatalf("built %d cards, want 13", len(cards))
	}
	if cards[0] != "Nine of Hearts" {
		t.Errorf("cards[0] = %q, want %q", cards[0], "Nine of Hearts")
	}
	if cards[12] != models.Joker {
		t.Errorf("cards[12] = %q, want the joker", cards[12])
	}

	count := 0
	for _, c := range cards {
		if c == "Ace of Spades" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("deck holds %d copies of the Ace of Spades, want 2", count)
	}
}

func TestParseTemplateRejectsNegativeCounts(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative copies", "copies: -1\n"},
		{"negative jokers", "jokers: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate([]byte(tt.data))
			if !errors.Is(err, ErrInvalidTemplate) {
				t.Errorf("ParseTemplate error = %v, want ErrInvalidTemplate", err)
			}
		})
	}
}

func TestParseTemplateRejectsOversizedDeck(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"huge copies", "copies: 150000000000000000\n"},
		{"huge jokers", "jokers: 9223372036854775807\n"},
		{"copies and jokers together", "copies: 20000\njokers: 10000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate([]byte(tt.data))
			if !errors.Is(err, ErrInvalidTemplate) {
				t.Errorf("ParseTemplate error = %v, want ErrInvalidTemplate", err)
			}
		})
	}

	// 20164 copies of 52 cards sits just under the limit.
	if _, err := ParseTemplate([]byte("copies: 20164\n")); err != nil {
		t.Errorf("ParseTemplate rejected a deck within the limit: %v", err)
	}
}

func TestParseTemplateBadYAML(t *testing.T) {
	_, err := ParseTemplate([]byte("suits: [unterminated"))
	if err == nil {
		t.Fatal("ParseTemplate accepted malformed YAML")
	}
	if errors.Is(err, ErrInvalidTemplate) {
		t.Error("YAML syntax error reported as ErrInvalidTemplate")
	}
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "euchre.yaml")
	data := []byte("name: euchre\nvalues: [Nine, Ten, Jack, Queen, King, Ace]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tmpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate returned error: %v", err)
	}
	if tmpl.Name != "euchre" {
		t.Errorf("Name = %q, want %q", tmpl.Name, "euchre")
	}
	if got := len(tmpl.Build()); got != 24 {
		t.Errorf("built %d cards, want 24", got)
	}
}

func TestLoadTemplateMissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadTemplate error = %v, want os.ErrNotExist", err)
	}
}
