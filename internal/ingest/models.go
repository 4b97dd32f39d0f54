package ingest

import "github.com/readstash/readstash/models"

// Job defines one source for a worker to ingest.
type Job struct {
	URL string
}

// Result holds the outcome of a processed job.
type Result struct {
	Source     string
	ArticleID  int64
	Article    *models.Article
	Error      error
	ErrorType  string // fetch_error, extract_error, store_error
	WordCounts map[string]int
}

// Stats summarizes an ingestion run for the final report.
type Stats struct {
	Total       int      `yaml:"total"`
	Successful  int      `yaml:"successful"`
	Failed      int      `yaml:"failed"`
	TopKeywords []string `yaml:"top_keywords,omitempty"`
}

// ResultSummary is the per-source entry in the run report.
type ResultSummary struct {
	Source      string   `yaml:"source"`
	Status      string   `yaml:"status"`
	ArticleID   int64    `yaml:"article_id,omitempty"`
	Title       string   `yaml:"title,omitempty"`
	Error       string   `yaml:"error,omitempty"`
	ErrorType   string   `yaml:"error_type,omitempty"`
	WordCount   int      `yaml:"word_count,omitempty"`
	ReadMinutes int      `yaml:"read_minutes,omitempty"`
	Language    string   `yaml:"language,omitempty"`
	AutoTags    []string `yaml:"auto_tags,omitempty"`
}

// BuildSummary converts a worker result into its report entry.
func BuildSummary(r Result) ResultSummary {
	summary := ResultSummary{Source: r.Source}
	if r.Error != nil {
		summary.Status = "failed"
		summary.Error = r.Error.Error()
		summary.ErrorType = r.ErrorType
		return summary
	}

	summary.Status = "success"
	summary.ArticleID = r.ArticleID
	summary.Title = r.Article.Title
	summary.WordCount = r.Article.Read.Words
	summary.ReadMinutes = r.Article.Read.Minutes
	summary.Language = r.Article.Language
	summary.AutoTags = r.Article.AutoTags
	return summary
}
