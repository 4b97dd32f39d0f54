// Package fetcher retrieves raw bytes for a URL. It makes a single
// attempt per call; retry policy belongs to the caller.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchError reports a failed URL retrieval with enough detail for the
// caller to surface an actionable message.
type FetchError struct {
	URL        string
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Get retrieves the URL and returns the body bytes plus the response
// Content-Type, so callers can route PDF responses to the PDF extractor.
func (f *Fetcher) Get(url string) ([]byte, string, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &FetchError{URL: url, Err: err}
	}
	return body, resp.Header.Get("Content-Type"), nil
}
