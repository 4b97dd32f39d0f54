// Package query implements the read-side CLI commands: related-article
// discovery over the store and the standalone text tools.
package query

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/readstash/readstash/pkg/db"
	"github.com/readstash/readstash/pkg/related"
	"github.com/readstash/readstash/pkg/summarizer"
	"github.com/readstash/readstash/pkg/takeaways"
	"github.com/readstash/readstash/pkg/tags"
	"github.com/readstash/readstash/pkg/tfidf"
)

// RelatedMatch is one entry in the related-articles output.
type RelatedMatch struct {
	ArticleID int64   `yaml:"article_id"`
	Title     string  `yaml:"title"`
	Score     float64 `yaml:"score"`
}

// RelatedAction ranks stored articles against --id by TF-IDF cosine
// similarity.
func RelatedAction(c *cli.Context) error {
	database, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer database.Close()

	articles, err := database.ListArticles()
	if err != nil {
		return err
	}

	corpus := make([]tfidf.Doc, len(articles))
	titles := make(map[string]string, len(articles))
	for i, a := range articles {
		id := strconv.FormatInt(a.ID, 10)
		corpus[i] = tfidf.Doc{ID: id, Title: a.Title, Plaintext: a.Plaintext}
		titles[id] = a.Title
	}

	targetID := strconv.FormatInt(c.Int64("id"), 10)
	scores, docs := related.Find(targetID, corpus, c.Int("top"))

	matches := make([]RelatedMatch, len(docs))
	for i, d := range docs {
		id, _ := strconv.ParseInt(d.ID, 10, 64)
		matches[i] = RelatedMatch{ArticleID: id, Title: titles[d.ID], Score: scores[i]}
	}

	return printYAML(map[string]any{"target": c.Int64("id"), "related": matches})
}

// ListAction prints every stored article's metadata.
func ListAction(c *cli.Context) error {
	database, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer database.Close()

	articles, err := database.ListArticles()
	if err != nil {
		return err
	}
	return printYAML(map[string]any{"articles": articles})
}

// SummarizeAction prints an extractive summary of --file or --text.
func SummarizeAction(c *cli.Context) error {
	text, err := inputText(c)
	if err != nil {
		return err
	}
	fmt.Println(summarizer.Summarize(text, c.Int("sentences")))
	return nil
}

// TagsAction prints candidate tags for --file or --text.
func TagsAction(c *cli.Context) error {
	text, err := inputText(c)
	if err != nil {
		return err
	}
	return printYAML(map[string]any{"tags": tags.Generate(text)})
}

// TakeawaysAction prints categorized key takeaways for --file or --text.
func TakeawaysAction(c *cli.Context) error {
	text, err := inputText(c)
	if err != nil {
		return err
	}

	strategy := takeaways.Strategy(takeaways.RuleBased{})
	if c.Bool("use-ai") {
		strategy = takeaways.NewModelBacked(nil)
	}

	result, err := strategy.Extract(context.Background(), text)
	if err != nil {
		// The rule-based extractor stays usable when the model is not.
		result = takeaways.Extract(text)
	}
	return printYAML(map[string]any{"takeaways": result})
}

func inputText(c *cli.Context) (string, error) {
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}
	if text := c.String("text"); text != "" {
		return text, nil
	}
	return "", fmt.Errorf("provide --file or --text")
}

func printYAML(v any) error {
	yamlBytes, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}

func openStore(path string) (*db.DB, error) {
	if path != "" {
		return db.OpenAt(path)
	}
	return db.Open()
}
