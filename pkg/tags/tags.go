// Package tags derives candidate tags for an article from its plaintext,
// merging named entities with noun tokens and ranking by frequency.
package tags

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/readstash/readstash/pkg/analytics"
)

// MaxTags caps the number of candidates returned per article.
const MaxTags = 25

// extraStopwords extends the analytics stopword list with generic nouns
// that read poorly as tags.
var extraStopwords = map[string]struct{}{
	"thing": {}, "things": {}, "way": {}, "ways": {}, "time": {}, "times": {},
	"people": {}, "person": {}, "year": {}, "years": {}, "day": {}, "days": {},
	"lot": {}, "lots": {}, "bit": {}, "kind": {}, "kinds": {}, "sort": {},
	"example": {}, "examples": {}, "number": {}, "numbers": {}, "point": {},
	"points": {}, "fact": {}, "facts": {}, "case": {}, "cases": {},
	"place": {}, "places": {}, "part": {}, "parts": {}, "today": {},
	"article": {}, "articles": {}, "post": {}, "posts": {}, "word": {},
	"words": {}, "someone": {}, "everyone": {}, "anything": {}, "something": {},
}

// Generate returns up to MaxTags candidate tags ranked by descending
// frequency. Candidates are named entities plus noun tokens surviving the
// stopword and length filters; equal frequencies keep first-appearance
// order. Empty input yields nil, never an error.
func Generate(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	add := func(candidate string) {
		candidate = strings.TrimSpace(candidate)
		if len([]rune(candidate)) <= 2 {
			return
		}
		if _, seen := counts[candidate]; !seen {
			order = append(order, candidate)
		}
		counts[candidate]++
	}

	for _, ent := range doc.Entities() {
		add(ent.Text)
	}

	for _, tok := range doc.Tokens() {
		if !strings.HasPrefix(tok.Tag, "NN") {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if analytics.IsStopword(lower) {
			continue
		}
		if _, skip := extraStopwords[lower]; skip {
			continue
		}
		add(tok.Text)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > MaxTags {
		order = order[:MaxTags]
	}
	return order
}
