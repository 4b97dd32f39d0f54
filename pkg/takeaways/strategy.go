package takeaways

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/readstash/readstash/models"
)

// Strategy produces takeaways for plaintext. The rule-based and
// model-backed implementations share one output shape so callers can
// swap them at call time.
type Strategy interface {
	Extract(ctx context.Context, text string) (models.Takeaways, error)
}

// RuleBased is the default strategy. It wraps Extract and never fails.
type RuleBased struct{}

func (RuleBased) Extract(_ context.Context, text string) (models.Takeaways, error) {
	return Extract(text), nil
}

// ModelError reports that the external summarization model was
// unreachable or returned an error. Callers should fall back to the
// rule-based strategy rather than drop takeaways entirely.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("summarization model unavailable: %v", e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// Summarizer abstracts the external model call: one text chunk in, a
// condensed rendition out.
type Summarizer interface {
	Summarize(ctx context.Context, chunk string) (string, error)
}

// ModelBacked sends the text to an external summarization model chunk by
// chunk, then routes the model output through the same rule-based
// categorizer. Chunks are submitted sequentially, never in parallel, to
// bound model load and memory.
type ModelBacked struct {
	Model      Summarizer
	ChunkChars int
}

// NewModelBacked wires a model strategy with the default chunk size.
func NewModelBacked(model Summarizer) *ModelBacked {
	return &ModelBacked{Model: model, ChunkChars: 4000}
}

func (m *ModelBacked) Extract(ctx context.Context, text string) (models.Takeaways, error) {
	if m.Model == nil {
		return nil, &ModelError{Err: errors.New("no model configured")}
	}

	var condensed []string
	for _, chunk := range chunkText(text, m.ChunkChars) {
		out, err := m.Model.Summarize(ctx, chunk)
		if err != nil {
			return nil, &ModelError{Err: err}
		}
		condensed = append(condensed, out)
	}
	return Extract(strings.Join(condensed, " ")), nil
}

// chunkText splits text into pieces of at most size characters, breaking
// on sentence boundaries where possible.
func chunkText(text string, size int) []string {
	if size <= 0 {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, sentence := range splitForChunking(text) {
		if current.Len() > 0 && current.Len()+len(sentence)+1 > size {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func splitForChunking(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	sentences := strings.SplitAfter(trimmed, ". ")
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
