package extract

import (
	"errors"
	"strings"
	"testing"
)

// articleHTML is a small but realistic page: enough paragraph text for
// readability to commit to the article body, plus boilerplate it should
// strip.
const articleHTML = `<!DOCTYPE html>
<html>
<head><title>The Slow Rise of Solid-State Batteries</title></head>
<body>
<nav><ul><li><a href="/">Home</a></li><li><a href="/archive">Archive</a></li></ul></nav>
<article>
<h1>The Slow Rise of Solid-State Batteries</h1>
<p>Solid-state batteries replace the flammable liquid electrolyte of conventional
lithium-ion cells with a solid ceramic or polymer layer, a change that promises
higher energy density and far better thermal stability for electric vehicles.</p>
<p>Manufacturers have struggled for a decade to produce the solid electrolyte at
scale because the ceramic layers crack under the mechanical stress of repeated
charge cycles, and every crack becomes a path for dendrites that short the cell.</p>
<p>Recent pilot lines sidestep the cracking problem by sintering thinner layers
and laminating them under moderate pressure, a process borrowed from multilayer
capacitor production that finally looks compatible with existing factory lines.</p>
<p>Analysts still expect several more years before the first mass-market vehicle
ships with a fully solid cell, but the remaining obstacles are now engineering
economics rather than open questions in materials science.</p>
</article>
<footer><p>Subscribe to the newsletter</p></footer>
</body>
</html>`

func TestFromHTML_ExtractsArticle(t *testing.T) {
	e := New()
	got, err := e.FromHTML(articleHTML, "https://example.com/solid-state")
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}

	if !strings.Contains(got.Title, "Solid-State") {
		t.Errorf("title = %q, want the article headline", got.Title)
	}
	if !strings.Contains(got.Plaintext, "solid electrolyte") {
		t.Error("plaintext missing article body text")
	}
	if got.WordCount == 0 {
		t.Error("word count = 0, want > 0")
	}
	if got.ReadingTimeMinutes < 1 {
		t.Errorf("reading time = %d, want >= 1", got.ReadingTimeMinutes)
	}
	if got.Summary == "" {
		t.Error("summary empty for HTML path")
	}
	if got.Language != "en" {
		t.Errorf("language = %q, want %q", got.Language, "en")
	}
}

func TestFromHTML_NoArticle(t *testing.T) {
	e := New()
	_, err := e.FromHTML("<html><body></body></html>", "https://example.com/empty")
	if err == nil {
		t.Fatal("FromHTML() on empty page succeeded, want error")
	}

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Errorf("got %T, want *ExtractionError", err)
	}
}

func TestFromPlaintext(t *testing.T) {
	e := New()
	got := e.FromPlaintext("line one\nline two with several more words here")

	if got.Plaintext != "line one\nline two with several more words here" {
		t.Error("plaintext not passed through verbatim")
	}
	if !strings.Contains(got.ContentHTML, "<br>") {
		t.Errorf("content HTML = %q, want newlines as <br>", got.ContentHTML)
	}
	if got.WordCount != 9 {
		t.Errorf("word count = %d, want 9", got.WordCount)
	}
	if got.ReadingTimeMinutes != 1 {
		t.Errorf("reading time = %d, want 1", got.ReadingTimeMinutes)
	}
	if got.Summary != "" {
		t.Errorf("summary = %q, want empty for plaintext path", got.Summary)
	}
}

func TestFromPlaintext_Empty(t *testing.T) {
	e := New()
	got := e.FromPlaintext("")

	if got.WordCount != 0 {
		t.Errorf("word count = %d, want 0", got.WordCount)
	}
	if got.ReadingTimeMinutes != 0 {
		t.Errorf("reading time = %d, want 0", got.ReadingTimeMinutes)
	}
}

func TestJoinPages(t *testing.T) {
	got := joinPages([]string{"page one text", "page two text"})
	want := "page one text page two text"
	if got != want {
		t.Errorf("joinPages = %q, want %q", got, want)
	}

	if got := joinPages(nil); got != "" {
		t.Errorf("joinPages(nil) = %q, want empty", got)
	}
}

func TestParagraphHTML(t *testing.T) {
	got := paragraphHTML("first\nsecond")
	want := "<p>first<br>second</p>"
	if got != want {
		t.Errorf("paragraphHTML = %q, want %q", got, want)
	}
}

func TestFromPDF_Garbage(t *testing.T) {
	e := New()
	_, err := e.FromPDF([]byte("not a pdf at all"))
	if err == nil {
		t.Fatal("FromPDF() on garbage bytes succeeded, want error")
	}

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Errorf("got %T, want *ExtractionError", err)
	}
}

func TestWordCountMatchesWhitespaceSplit(t *testing.T) {
	e := New()
	got := e.FromPlaintext("  alpha   beta\tgamma\ndelta  ")
	if got.WordCount != 4 {
		t.Errorf("word count = %d, want 4", got.WordCount)
	}
}
