// Package extract normalizes raw HTML, PDF bytes, or plaintext into
// clean readable content plus derived reading stats. The HTML path runs
// go-readability for boilerplate removal and goquery over the distilled
// article to flatten it into plaintext.
package extract

import (
	"bufio"
	"math"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/readstash/readstash/models"
	"github.com/readstash/readstash/pkg/summarizer"
)

// wordsPerMinute is the reading-speed assumption behind the
// reading-time estimate.
const wordsPerMinute = 200

// Extractor converts raw sources into ExtractedContent. Construct with
// New; the zero value skips language detection.
type Extractor struct {
	SummarySentences int
	detector         lingua.LanguageDetector
}

// New builds an Extractor with language detection over the languages a
// read-it-later corpus realistically contains.
func New() *Extractor {
	languages := []lingua.Language{
		lingua.English, lingua.Spanish, lingua.French,
		lingua.German, lingua.Portuguese, lingua.Italian,
	}
	return &Extractor{
		SummarySentences: summarizer.DefaultMaxSentences,
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// FromHTML runs readability over raw HTML (a URL fetch result or an
// uploaded HTML file) and returns clean content. A readability pass that
// finds no article body is an ExtractionError, never silent empty output.
func (e *Extractor) FromHTML(rawHTML, sourceURL string) (*models.ExtractedContent, error) {
	parsedURL, err := url.Parse(sourceURL)
	if err != nil {
		return nil, &ExtractionError{Source: sourceURL, Err: err}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return nil, &ExtractionError{Source: sourceURL, Err: err}
	}

	plaintext := flattenContent(article.Content)
	if plaintext == "" {
		plaintext = normalizeText(article.TextContent)
	}
	if strings.TrimSpace(article.Content) == "" || plaintext == "" {
		return nil, &ExtractionError{Source: sourceURL, Err: ErrNoContent}
	}

	content := e.build(article.Title, article.Content, plaintext, true)
	content.Excerpt = article.Excerpt
	content.Author = article.Byline
	content.SiteName = article.SiteName
	return content, nil
}

// FromPlaintext wraps raw text verbatim: plaintext is the input, content
// HTML is the input with newlines as <br>. It cannot fail.
func (e *Extractor) FromPlaintext(text string) *models.ExtractedContent {
	contentHTML := strings.ReplaceAll(text, "\n", "<br>")
	return e.build("", contentHTML, text, false)
}

// build fills in the stats common to every input shape.
func (e *Extractor) build(title, contentHTML, plaintext string, withSummary bool) *models.ExtractedContent {
	wordCount := 0
	if strings.TrimSpace(plaintext) != "" {
		wordCount = len(strings.Fields(plaintext))
	}

	content := &models.ExtractedContent{
		Title:              title,
		ContentHTML:        contentHTML,
		Plaintext:          plaintext,
		WordCount:          wordCount,
		ReadingTimeMinutes: int(math.Ceil(float64(wordCount) / wordsPerMinute)),
	}

	if withSummary {
		sentences := e.SummarySentences
		if sentences <= 0 {
			sentences = summarizer.DefaultMaxSentences
		}
		content.Summary = summarizer.Summarize(plaintext, sentences)
	}

	if e.detector != nil && wordCount > 0 {
		if lang, ok := e.detector.DetectLanguageOf(plaintext); ok {
			content.Language = strings.ToLower(lang.IsoCode639_1().String())
			content.LanguageConfidence = e.detector.ComputeLanguageConfidence(plaintext, lang)
		}
	}

	return content
}

// flattenContent walks the content-bearing tags of distilled article HTML
// and joins their normalized text, one block per line.
func flattenContent(contentHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return ""
	}

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li,blockquote,pre").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return strings.Join(blocks, "\n")
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
