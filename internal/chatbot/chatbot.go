// Package chatbot answers visitor questions from a fixed list of canned answers.
//
// A message is matched against every known question by word overlap: the score
// is the share of the question's words that also occur in the message. The best
// scoring answer wins when it reaches the threshold.
package chatbot

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	DefaultThreshold = 0.3
	FallbackAnswer   = "Sorry, I did not get that. Try asking about bookings, offers, agencies or payments."
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

type Entry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Reply struct {
	Answer   string
	Question string
	Score    float64
	Matched  bool
}

type Bot struct {
	entries   []Entry
	tokens    []map[string]struct{}
	threshold float64
}

// New builds a bot over entries. A non-positive threshold falls back to DefaultThreshold.
func New(entries []Entry, threshold float64) (*Bot, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("chatbot: knowledge base is empty")
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	b := &Bot{
		entries:   entries,
		tokens:    make([]map[string]struct{}, len(entries)),
		threshold: threshold,
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Question) == "" || strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("chatbot: entry %d has an empty question or answer", i)
		}
		b.tokens[i] = tokenSet(e.Question)
	}

	return b, nil
}

// Load reads the knowledge base from a YAML file, or the built-in one when path is empty.
func Load(path string) ([]Entry, error) {
	data := defaultKnowledge

	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("chatbot: read knowledge base: %w", err)
		}
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("chatbot: parse knowledge base: %w", err)
	}

	return entries, nil
}

func (b *Bot) Answer(message string) Reply {
	query := tokenSet(message)
	if len(query) == 0 {
		return Reply{Answer: FallbackAnswer}
	}

	best, bestScore := -1, 0.0
	for i, qt := range b.tokens {
		if len(qt) == 0 {
			continue
		}

		hits := 0
		for tok := range qt {
			if _, ok := query[tok]; ok {
				hits++
			}
		}

		score := float64(hits) / float64(len(qt))
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < b.threshold {
		return Reply{Answer: FallbackAnswer, Score: bestScore}
	}

	return Reply{
		Answer:   b.entries[best].Answer,
		Question: b.entries[best].Question,
		Score:    bestScore,
		Matched:  true,
	}
}

func (b *Bot) Questions() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Question
	}

	return out
}

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "i": {}, "my": {}, "me": {}, "do": {}, "does": {},
	"is": {}, "are": {}, "can": {}, "to": {}, "of": {}, "for": {}, "and": {}, "or": {},
	"in": {}, "on": {}, "it": {}, "you": {}, "your": {}, "what": {}, "how": {}, "why": {},
	"which": {}, "with": {}, "not": {}, "be": {}, "please": {}, "want": {}, "would": {},
	"like": {}, "should": {}, "there": {}, "this": {}, "that": {}, "mean": {},
}

func tokenSet(s string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		set[w] = struct{}{}
	}

	return set
}
