// Package takeaways scores sentences against a fixed battery of regex
// rules and buckets the survivors into a closed set of categories. It is
// a pure computation: no I/O, no failure modes, empty input in means an
// empty mapping out.
package takeaways

import (
	"strings"
	"unicode/utf8"

	"github.com/readstash/readstash/models"
	"github.com/readstash/readstash/pkg/summarizer"
)

// maxPerCategory caps each category at its first five sentences in
// document order.
const maxPerCategory = 5

// Extract runs the rule-based pipeline over plaintext. Sentences scoring
// zero are discarded; the rest are deduplicated within their category.
// Categories with no sentences are absent from the result.
func Extract(text string) models.Takeaways {
	result := models.Takeaways{}
	for _, sentence := range summarizer.SplitSentences(text) {
		score, matched := scoreSentence(sentence)
		if score == 0 {
			continue
		}

		category := categorize(sentence, matched, score)
		bucket := result[category]
		if len(bucket) >= maxPerCategory || contains(bucket, sentence) {
			continue
		}
		result[category] = append(bucket, sentence)
	}
	return result
}

// scoreSentence applies every scoring pattern plus the question, length,
// and digit bonuses. The matched set is returned for category routing.
func scoreSentence(sentence string) (int, map[string]bool) {
	matched := make(map[string]bool, len(scoring))
	score := 0
	for _, p := range scoring {
		if p.re.MatchString(sentence) {
			matched[p.name] = true
			score += p.weight
		}
	}
	if isQuestion(sentence) {
		score += questionWeight
	}
	if n := utf8.RuneCountInString(sentence); n >= 20 && n < 300 {
		score += lengthBonus
	}
	if digitPattern.MatchString(sentence) {
		score += digitBonus
	}
	return score, matched
}

// categorize picks the first matching bucket. Pattern-specific categories
// are checked before the generic score threshold so that, e.g., a dense
// statistics sentence still lands in Key Findings rather than Main Points.
func categorize(sentence string, matched map[string]bool, score int) string {
	switch {
	case isQuestion(sentence):
		return models.CategoryQuestions
	case matched[patMainPoint] || matched[patContentOverview]:
		return models.CategoryMainPoints
	case matched[patFinding] || matched[patStatistic]:
		return models.CategoryKeyFindings
	case matched[patCausation] || matched[patImpact] || matched[patConclusion]:
		return models.CategoryInsights
	case matched[patRecommendation]:
		return models.CategoryActionItems
	case score >= 4:
		return models.CategoryMainPoints
	default:
		return models.CategoryTechnicalDetails
	}
}

func isQuestion(sentence string) bool {
	trimmed := strings.TrimSpace(sentence)
	return strings.HasSuffix(trimmed, "?") && questionStart.MatchString(trimmed)
}

func contains(bucket []string, sentence string) bool {
	for _, s := range bucket {
		if s == sentence {
			return true
		}
	}
	return false
}
