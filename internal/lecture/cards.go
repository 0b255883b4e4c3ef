package lecture

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCardBlock is the block kind mined for flashcards.
const DefaultCardBlock = "flashcard"

// Card is one exported flashcard. Within a block occurrence the first
// paragraph is the front and everything after the first blank line is
// the back.
type Card struct {
	Lecture int    `yaml:"lecture"`
	Front   string `yaml:"front"`
	Back    string `yaml:"back,omitempty"`
}

// Deck is the flashcard export document.
type Deck struct {
	Block string `yaml:"block"`
	Cards []Card `yaml:"cards"`
}

// BuildDeck mines every document in the snapshot for card blocks.
// Errored snapshot entries are skipped by the caller before this is
// reached; entries without a parsed document contribute nothing.
func BuildDeck(results []Result, kind string) *Deck {
	deck := &Deck{Block: kind}

	for _, result := range results {
		if result.Err != nil || result.Doc == nil {
			continue
		}

		for _, occurrence := range BlockOccurrences(result.Doc.Render(), kind) {
			card, ok := cardFromLines(result.ID, occurrence)
			if ok {
				deck.Cards = append(deck.Cards, card)
			}
		}
	}

	return deck
}

// cardFromLines splits one occurrence into front and back.
func cardFromLines(id int, lines []string) (Card, bool) {
	var front, back []string

	section := &front

	for _, line := range lines {
		if strings.TrimSpace(line) == "" && section == &front {
			section = &back
			continue
		}

		*section = append(*section, line)
	}

	if len(front) == 0 {
		return Card{}, false
	}

	return Card{
		Lecture: id,
		Front:   strings.TrimSpace(strings.Join(front, "\n")),
		Back:    strings.TrimSpace(strings.Join(back, "\n")),
	}, true
}

// Marshal serializes the deck as YAML.
func (d *Deck) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling deck: %w", err)
	}

	return data, nil
}
