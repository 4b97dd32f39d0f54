package extract

import (
	"errors"
	"fmt"
)

// ErrNoContent signals that a source parsed cleanly but yielded no
// readable article body.
var ErrNoContent = errors.New("could not parse article content")

// ExtractionError reports that readable content could not be produced
// from a source. It wraps the underlying parser failure.
type ExtractionError struct {
	Source string // URL, file name, or "pdf"/"html" when anonymous
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("content extraction failed for %s: %v", e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
