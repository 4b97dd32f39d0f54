// Package models defines data structures shared across the pipeline.
package models

import "time"

// Article is the record an ingestion run produces. The store persists it;
// the extraction pipeline only fills in the derived fields.
type Article struct {
	ID       int64  `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Source   string `json:"source" yaml:"source"`     // original URL or file name
	Filetype string `json:"filetype" yaml:"filetype"` // url, html, pdf, text
	Status   string `json:"status" yaml:"status"`     // unread, reading, read

	Plaintext string   `json:"plaintext" yaml:"-"`
	Markdown  string   `json:"markdown" yaml:"-"` // clean content HTML
	Summary   string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	AutoTags  []string `json:"auto_tags,omitempty" yaml:"auto_tags,omitempty"`

	Read      ReadStats `json:"read" yaml:"read"`
	Takeaways Takeaways `json:"takeaways,omitempty" yaml:"takeaways,omitempty"`

	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	TopKeywords []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ReadStats holds the reading-cost signals computed at extraction time.
type ReadStats struct {
	Words   int `json:"words" yaml:"words"`
	Minutes int `json:"minutes" yaml:"minutes"`
}
