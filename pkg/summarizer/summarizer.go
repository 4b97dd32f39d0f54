// Package summarizer produces extractive summaries by scoring sentences
// with a within-document inverse sentence frequency. This is deliberately
// not the corpus-level TF-IDF in pkg/tfidf: each sentence is treated as a
// document of its own, so words concentrated in few sentences mark those
// sentences as salient.
package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/readstash/readstash/pkg/analytics"
)

// DefaultMaxSentences is the summary length used when the caller does not
// specify one.
const DefaultMaxSentences = 3

var sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?]+)`)

// SplitSentences segments text on ./!/? boundaries. Text with no such
// boundary comes back as a single trimmed sentence.
func SplitSentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	sentences := make([]string, 0, len(matches))
	for _, s := range matches {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Summarize returns the top maxSentences sentences of text joined by a
// single space, highest score first. Sentences are scored as the sum of
// count * idf over their words, where idf counts how many sentences
// contain each word. Stopwords and words of length <= 2 do not score.
// Empty input yields "".
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	// Sentence frequency per word: in how many sentences it appears.
	sf := make(map[string]int)
	for _, sentence := range sentences {
		seen := make(map[string]struct{})
		for _, word := range scorableWords(sentence) {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			sf[word]++
		}
	}

	total := float64(len(sentences))
	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		counts := make(map[string]int)
		for _, word := range scorableWords(sentence) {
			counts[word]++
		}
		var score float64
		for word, count := range counts {
			score += float64(count) * math.Log(total/float64(sf[word]+1))
		}
		ranked[i] = scored{i, score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if maxSentences > len(ranked) {
		maxSentences = len(ranked)
	}
	picked := make([]string, maxSentences)
	for i := 0; i < maxSentences; i++ {
		picked[i] = sentences[ranked[i].index]
	}
	return strings.Join(picked, " ")
}

// scorableWords splits on whitespace, case-sensitive, keeping only words
// longer than two characters that are not stopwords.
func scorableWords(sentence string) []string {
	fields := strings.Fields(sentence)
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len([]rune(w)) <= 2 || analytics.IsStopword(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}
