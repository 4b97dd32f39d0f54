package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/readstash/readstash/models"
	"github.com/readstash/readstash/pkg/db"
	"github.com/readstash/readstash/pkg/extract"
	"github.com/readstash/readstash/pkg/fetcher"
	"github.com/readstash/readstash/pkg/mapreduce"
	"github.com/readstash/readstash/pkg/takeaways"
)

// Report is the YAML document an ingest run prints.
type Report struct {
	Stats   Stats           `yaml:"stats"`
	Results []ResultSummary `yaml:"results"`
}

// IngestAction handles the ingest command: URLs, a local file, or raw
// text in; extracted, tagged, summarized articles in the store out.
func IngestAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config := &models.IngestConfig{
		WorkerCount:      c.Int("workers"),
		Database:         c.String("db"),
		SummarySentences: c.Int("sentences"),
	}
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		config.URLs = loaded.URLs
		if !c.IsSet("workers") && loaded.WorkerCount > 0 {
			config.WorkerCount = loaded.WorkerCount
		}
		if !c.IsSet("db") && loaded.Database != "" {
			config.Database = loaded.Database
		}
		if !c.IsSet("sentences") && loaded.SummarySentences > 0 {
			config.SummarySentences = loaded.SummarySentences
		}
	}
	if urlsStr := c.String("urls"); urlsStr != "" {
		for _, u := range strings.Split(urlsStr, ",") {
			if u = strings.TrimSpace(u); u != "" {
				config.URLs = append(config.URLs, u)
			}
		}
	}

	database, err := openStore(config.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return err
	}
	defer database.Close()

	extractor := extract.New()
	if config.SummarySentences > 0 {
		extractor.SummarySentences = config.SummarySentences
	}

	pipeline := &Pipeline{
		Fetcher:   fetcher.NewFetcher(),
		Extractor: extractor,
		Store:     database,
		Strategy:  selectStrategy(c.Bool("use-ai")),
		Logger:    logger,
	}

	ctx := context.Background()
	var results []Result
	var wordCounts map[string]int

	switch {
	case c.String("file") != "":
		result, err := ingestFile(ctx, pipeline, c.String("file"))
		if err != nil {
			return err
		}
		results = []Result{result}
		wordCounts = result.WordCounts
	case c.String("text") != "":
		result := pipeline.IngestText(ctx, c.String("text"), "inline-text")
		results = []Result{result}
		wordCounts = result.WordCounts
	case len(config.URLs) > 0:
		results, wordCounts = Run(ctx, pipeline, config.URLs, config.WorkerCount)
	default:
		return fmt.Errorf("nothing to ingest: provide --urls, --file, or --text")
	}

	report := Report{}
	for _, r := range results {
		report.Stats.Total++
		if r.Error != nil {
			report.Stats.Failed++
		} else {
			report.Stats.Successful++
		}
		report.Results = append(report.Results, BuildSummary(r))
	}
	report.Stats.TopKeywords = mapreduce.TopKeywords(wordCounts, 25)

	yamlBytes, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(yamlBytes))

	if report.Stats.Failed > 0 {
		return fmt.Errorf("%d of %d sources failed", report.Stats.Failed, report.Stats.Total)
	}
	return nil
}

// ingestFile routes an uploaded file by extension: .pdf to the PDF
// extractor, .html/.htm to readability, anything else as plaintext.
func ingestFile(ctx context.Context, p *Pipeline, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	source := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return p.IngestPDF(ctx, data, source), nil
	case ".html", ".htm":
		return p.IngestHTML(ctx, string(data), source), nil
	default:
		return p.IngestText(ctx, string(data), source), nil
	}
}

// selectStrategy picks the takeaway path. The model-backed strategy has
// no model wired by default, so deriveArticle falls back to rule-based
// extraction after logging the failure.
func selectStrategy(useAI bool) takeaways.Strategy {
	if useAI {
		return takeaways.NewModelBacked(nil)
	}
	return takeaways.RuleBased{}
}

func openStore(path string) (*db.DB, error) {
	if path != "" {
		return db.OpenAt(path)
	}
	return db.Open()
}
