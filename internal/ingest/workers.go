package ingest

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/readstash/readstash/models"
	"github.com/readstash/readstash/pkg/db"
	"github.com/readstash/readstash/pkg/extract"
	"github.com/readstash/readstash/pkg/fetcher"
	"github.com/readstash/readstash/pkg/mapreduce"
	"github.com/readstash/readstash/pkg/takeaways"
	"github.com/readstash/readstash/pkg/tags"
)

// Pipeline bundles the collaborators one ingestion run needs.
type Pipeline struct {
	Fetcher   *fetcher.Fetcher
	Extractor *extract.Extractor
	Store     *db.DB
	Strategy  takeaways.Strategy
	Logger    *slog.Logger
}

// worker processes jobs from the jobs channel and sends results to the
// results channel.
func worker(ctx context.Context, id int, p *Pipeline, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		p.Logger.Info("worker started job", "worker_id", id, "url", job.URL)
		results <- p.ingestURL(ctx, job.URL)
		p.Logger.Info("worker finished job", "worker_id", id, "url", job.URL)
	}
}

// ingestURL fetches one URL, routes it to the right extractor by content
// type, derives the insight fields, and stores the article.
func (p *Pipeline) ingestURL(ctx context.Context, url string) Result {
	result := Result{Source: url}

	body, contentType, err := p.Fetcher.Get(url)
	if err != nil {
		p.Logger.Error("fetch failed", "url", url, "error", err)
		result.Error = err
		result.ErrorType = "fetch_error"
		return result
	}

	var content *models.ExtractedContent
	filetype := "url"
	if strings.Contains(contentType, "application/pdf") {
		filetype = "pdf"
		content, err = p.Extractor.FromPDF(body)
	} else {
		content, err = p.Extractor.FromHTML(string(body), url)
	}
	if err != nil {
		p.Logger.Error("extraction failed", "url", url, "error", err)
		result.Error = err
		result.ErrorType = "extract_error"
		return result
	}

	article, wordCounts := p.deriveArticle(ctx, content, url, filetype)
	result.WordCounts = wordCounts

	id, err := p.Store.InsertArticle(article)
	if err != nil {
		p.Logger.Error("store failed", "url", url, "error", err)
		result.Error = err
		result.ErrorType = "store_error"
		return result
	}
	article.ID = id
	result.ArticleID = id
	result.Article = article
	return result
}

// IngestText runs the plaintext variant: no fetch, no readability pass.
func (p *Pipeline) IngestText(ctx context.Context, text, source string) Result {
	result := Result{Source: source}

	content := p.Extractor.FromPlaintext(text)
	article, wordCounts := p.deriveArticle(ctx, content, source, "text")
	result.WordCounts = wordCounts

	id, err := p.Store.InsertArticle(article)
	if err != nil {
		p.Logger.Error("store failed", "source", source, "error", err)
		result.Error = err
		result.ErrorType = "store_error"
		return result
	}
	article.ID = id
	result.ArticleID = id
	result.Article = article
	return result
}

// IngestPDF runs the uploaded-PDF variant.
func (p *Pipeline) IngestPDF(ctx context.Context, data []byte, source string) Result {
	result := Result{Source: source}

	content, err := p.Extractor.FromPDF(data)
	if err != nil {
		p.Logger.Error("extraction failed", "source", source, "error", err)
		result.Error = err
		result.ErrorType = "extract_error"
		return result
	}

	article, wordCounts := p.deriveArticle(ctx, content, source, "pdf")
	result.WordCounts = wordCounts

	id, err := p.Store.InsertArticle(article)
	if err != nil {
		p.Logger.Error("store failed", "source", source, "error", err)
		result.Error = err
		result.ErrorType = "store_error"
		return result
	}
	article.ID = id
	result.ArticleID = id
	result.Article = article
	return result
}

// IngestHTML runs the uploaded-HTML variant.
func (p *Pipeline) IngestHTML(ctx context.Context, rawHTML, source string) Result {
	result := Result{Source: source}

	content, err := p.Extractor.FromHTML(rawHTML, source)
	if err != nil {
		p.Logger.Error("extraction failed", "source", source, "error", err)
		result.Error = err
		result.ErrorType = "extract_error"
		return result
	}

	article, wordCounts := p.deriveArticle(ctx, content, source, "html")
	result.WordCounts = wordCounts

	id, err := p.Store.InsertArticle(article)
	if err != nil {
		p.Logger.Error("store failed", "source", source, "error", err)
		result.Error = err
		result.ErrorType = "store_error"
		return result
	}
	article.ID = id
	result.ArticleID = id
	result.Article = article
	return result
}

// deriveArticle attaches auto tags, takeaways, and keyword counts to
// extracted content. Takeaway extraction falls back to the rule-based
// path when the configured strategy reports a model failure; partial
// success still produces a storable article.
func (p *Pipeline) deriveArticle(ctx context.Context, content *models.ExtractedContent, source, filetype string) (*models.Article, map[string]int) {
	insights, err := p.Strategy.Extract(ctx, content.Plaintext)
	if err != nil {
		p.Logger.Warn("takeaway strategy failed, using rule-based fallback", "source", source, "error", err)
		insights = takeaways.Extract(content.Plaintext)
	}

	wordCounts := mapreduce.Map(content.Plaintext)

	title := content.Title
	if title == "" {
		title = source
	}

	article := &models.Article{
		Title:              title,
		Source:             source,
		Filetype:           filetype,
		Plaintext:          content.Plaintext,
		Markdown:           content.ContentHTML,
		Summary:            content.Summary,
		AutoTags:           tags.Generate(content.Plaintext),
		Read:               models.ReadStats{Words: content.WordCount, Minutes: content.ReadingTimeMinutes},
		Takeaways:          insights,
		Language:           content.Language,
		LanguageConfidence: content.LanguageConfidence,
		TopKeywords:        mapreduce.TopKeywords(wordCounts, 25),
	}
	return article, wordCounts
}

// Run ingests the configured URLs with a worker pool, then reduces the
// per-article word counts into a run-level keyword report.
func Run(ctx context.Context, p *Pipeline, urls []string, workerCount int) ([]Result, map[string]int) {
	if workerCount <= 0 {
		workerCount = 4
	}

	p.Logger.Info("starting concurrent ingest phase", "url_count", len(urls), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, p, &wg, jobs, results)
	}

	for _, url := range urls {
		jobs <- Job{URL: url}
	}
	close(jobs)

	wg.Wait()
	close(results)
	p.Logger.Info("all ingest workers finished")

	allResults := make([]Result, 0, len(urls))
	intermediate := make([]map[string]int, 0, len(urls))
	for result := range results {
		allResults = append(allResults, result)
		if result.WordCounts != nil {
			intermediate = append(intermediate, result.WordCounts)
		}
	}

	return allResults, mapreduce.Reduce(intermediate)
}
