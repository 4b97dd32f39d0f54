package models

// ExtractedContent is the output of one readable-content extraction,
// regardless of whether the source was HTML, PDF bytes, or raw text.
type ExtractedContent struct {
	Title              string `json:"title"`
	ContentHTML        string `json:"content_html"`
	Plaintext          string `json:"plaintext"`
	WordCount          int    `json:"word_count"`
	ReadingTimeMinutes int    `json:"reading_time_minutes"`
	Summary            string `json:"summary,omitempty"`

	// Enrichment, populated where the source allows it
	Language           string  `json:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty"`
	Excerpt            string  `json:"excerpt,omitempty"`
	Author             string  `json:"author,omitempty"`
	SiteName           string  `json:"site_name,omitempty"`
}
