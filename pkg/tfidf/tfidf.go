// Package tfidf builds sparse TF-IDF vectors over small in-memory
// corpora and compares them with cosine similarity.
//
// Everything is recomputed from the full corpus on each call. There is no
// cache and no incremental index; per-user corpora are hundreds of
// articles, so scan cost stays negligible next to extraction cost.
package tfidf

import (
	"math"
	"regexp"
	"strings"
)

var termPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*`)

// Tokenize splits text into lowercase word terms, dropping any term of
// length <= 2. Appearance order and duplicates are preserved.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	raw := termPattern.FindAllString(strings.ToLower(text), -1)
	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		if len([]rune(t)) > 2 {
			terms = append(terms, t)
		}
	}
	return terms
}

// TermFrequency counts occurrences of each distinct term. Raw counts only,
// no normalization by document length.
func TermFrequency(terms []string) map[string]int {
	freq := make(map[string]int, len(terms))
	for _, t := range terms {
		freq[t]++
	}
	return freq
}

// Doc is one corpus entry. Title stands in when Plaintext is empty.
type Doc struct {
	ID        string
	Title     string
	Plaintext string
}

func (d Doc) text() string {
	if strings.TrimSpace(d.Plaintext) != "" {
		return d.Plaintext
	}
	return d.Title
}

// Vector is a sparse term -> weight map. Absent terms weigh 0.
type Vector map[string]float64

// Compute builds one TF-IDF vector per document, in input order.
// weight = count * ln(N / (1 + df)); the +1 keeps the denominator
// non-zero without a separate smoothing pass.
func Compute(docs []Doc) []Vector {
	n := len(docs)
	freqs := make([]map[string]int, n)
	df := make(map[string]int)
	for i, d := range docs {
		freqs[i] = TermFrequency(Tokenize(d.text()))
		for term := range freqs[i] {
			df[term]++
		}
	}

	vectors := make([]Vector, n)
	for i, tf := range freqs {
		vec := make(Vector, len(tf))
		for term, count := range tf {
			vec[term] = float64(count) * math.Log(float64(n)/float64(1+df[term]))
		}
		vectors[i] = vec
	}
	return vectors
}

// Cosine returns the cosine similarity of two sparse vectors. Nil, empty,
// or zero-magnitude vectors compare as 0 rather than producing NaN.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
		magA += wa * wa
	}
	for _, wb := range b {
		magB += wb * wb
	}

	magA = math.Sqrt(magA)
	magB = math.Sqrt(magB)
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (magA * magB)
}
