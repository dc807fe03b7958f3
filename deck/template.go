package deck

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"deckhand/models"
)

// ErrInvalidTemplate is returned when a template parses as YAML but
// describes an impossible deck.
var ErrInvalidTemplate = errors.New("invalid deck template")

// maxTemplateCards bounds how many cards a template may describe.
const maxTemplateCards = 1 << 20

// Template describes a deck to build. ParseTemplate fills omitted
// fields from the standard deck: all four suits, all thirteen values,
// one copy, no jokers.
type Template struct {
	Name   string   `yaml:"name"`
	Suits  []string `yaml:"suits"`
	Values []string `yaml:"values"`
	Copies int      `yaml:"copies"`
	Jokers int      `yaml:"jokers"`
}

// Standard returns the template for the ordinary 52-card deck.
func Standard() Template {
	return Template{
		Name:   "standard",
		Suits:  append([]string(nil), models.Suits...),
		Values: append([]string(nil), models.Values...),
		Copies: 1,
	}
}

// ParseTemplate decodes a YAML template, fills in defaults for omitted
// fields, and rejects templates whose deck would exceed
// maxTemplateCards.
func ParseTemplate(data []byte) (Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("parse template: %w", err)
	}
	if t.Copies < 0 || t.Jokers < 0 {
		return Template{}, fmt.Errorf("%w: negative card counts", ErrInvalidTemplate)
	}
	if len(t.Suits) == 0 {
		t.Suits = append([]string(nil), models.Suits...)
	}
	if len(t.Values) == 0 {
		t.Values = append([]string(nil), models.Values...)
	}
	if t.Copies == 0 {
		t.Copies = 1
	}

	// The first two bounds keep the product and the sum below from
	// overflowing.
	perCopy := len(t.Suits) * len(t.Values)
	if t.Jokers > maxTemplateCards || t.Copies > maxTemplateCards/perCopy ||
		t.Copies*perCopy+t.Jokers > maxTemplateCards {
		return Template{}, fmt.Errorf("%w: deck larger than %d cards", ErrInvalidTemplate, maxTemplateCards)
	}
	return t, nil
}

// LoadTemplate reads and parses a YAML template file.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template: %w", err)
	}
	return ParseTemplate(data)
}

// Build produces the deck the template describes, in template order:
// copies of each suit block, then jokers at the end.
func (t Template) Build() []models.Card {
	total := t.Copies*len(t.Suits)*len(t.Values) + t.Jokers
	if total < 0 {
		total = 0
	}
	cards := make([]models.Card, 0, total)
	for copies := 0; copies < t.Copies; copies++ {
		for _, suit := range t.Suits {
			for _, value := range t.Values {
				cards = append(cards, models.New(value, suit))
			}
		}
	}
	for i := 0; i < t.Jokers; i++ {
		cards = append(cards, models.Joker)
	}
	return cards
}
