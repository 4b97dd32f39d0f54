package summarizer

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: "   \n\t", want: 0},
		{name: "three terminated sentences", text: "One fish. Two fish! Red fish?", want: 3},
		{name: "no terminator falls back to whole text", text: "an unterminated fragment", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if len(got) != tt.want {
				t.Errorf("SplitSentences(%q) = %d sentences, want %d", tt.text, len(got), tt.want)
			}
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize("", 3); got != "" {
		t.Errorf("Summarize(\"\") = %q, want empty", got)
	}
}

func TestSummarize_SingleSentence(t *testing.T) {
	text := "Quantum annealing outperformed classical heuristics in the benchmark."
	got := Summarize(text, 3)
	if got != text {
		t.Errorf("single-sentence summary = %q, want input unchanged", got)
	}
}

func TestSummarize_CapsSentenceCount(t *testing.T) {
	text := "Alpha particles scatter widely. Beta decay emits electrons. Gamma rays penetrate deeply. Neutron capture transmutes nuclei. Fission releases enormous energy."
	got := Summarize(text, 2)

	count := strings.Count(got, ".")
	if count > 2 {
		t.Errorf("summary has %d sentences, want <= 2: %q", count, got)
	}
}

func TestSummarize_PicksDistinctiveSentence(t *testing.T) {
	// The middle sentence carries words appearing nowhere else and more
	// scorable words overall, so it must survive a one-sentence summary.
	text := "Weather stayed mild today. Cryptographic lattices resist quantum adversaries through structured hardness assumptions everywhere. Weather stayed mild today."
	got := Summarize(text, 1)
	if !strings.Contains(got, "Cryptographic lattices") {
		t.Errorf("summary = %q, want the distinctive sentence", got)
	}
}

func TestSummarize_DefaultLength(t *testing.T) {
	text := "First point made here. Second point follows closely. Third point wraps things. Fourth point trails behind. Fifth point ends discussion."
	got := Summarize(text, 0)

	count := strings.Count(got, ".")
	if count != DefaultMaxSentences {
		t.Errorf("default summary has %d sentences, want %d", count, DefaultMaxSentences)
	}
}
