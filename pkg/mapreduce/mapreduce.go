// Package mapreduce aggregates per-article word counts into run-level
// keyword reports.
package mapreduce

import "github.com/readstash/readstash/pkg/analytics"

// Map generates a word frequency map for one article's plaintext.
func Map(plaintext string) map[string]int {
	return analytics.WordFrequency(plaintext)
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	final := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			final[word] += count
		}
	}

	return final
}
