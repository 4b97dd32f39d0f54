// Package related ranks corpus documents against a target article by
// TF-IDF cosine similarity.
package related

import (
	"sort"

	"github.com/readstash/readstash/pkg/tfidf"
)

// Find computes TF-IDF vectors over the whole corpus, scores every other
// document against the target, and returns the top n matches as parallel
// score/document slices, best first. A target ID absent from the corpus
// yields empty results; it is not an error.
//
// Equal scores keep their corpus order (stable sort).
func Find(targetID string, corpus []tfidf.Doc, n int) ([]float64, []tfidf.Doc) {
	vectors := tfidf.Compute(corpus)

	target := -1
	for i, d := range corpus {
		if d.ID == targetID {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, nil
	}

	type candidate struct {
		index int
		score float64
	}
	candidates := make([]candidate, 0, len(corpus)-1)
	for i := range corpus {
		if i == target {
			continue
		}
		candidates = append(candidates, candidate{i, tfidf.Cosine(vectors[target], vectors[i])})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if n < 0 {
		n = 0
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	scores := make([]float64, n)
	docs := make([]tfidf.Doc, n)
	for i := 0; i < n; i++ {
		scores[i] = candidates[i].score
		docs[i] = corpus[candidates[i].index]
	}
	return scores, docs
}
