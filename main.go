package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/readstash/readstash/internal/ingest"
	"github.com/readstash/readstash/internal/query"
)

func main() {
	app := &cli.App{
		Name:  "readstash",
		Usage: "save articles, extract readable content, and surface key insights",
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "fetch and extract one or more sources into the article store",
				Action: ingest.IngestAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "urls", Usage: "comma-separated URLs to ingest"},
					&cli.StringFlag{Name: "file", Usage: "local file to ingest (.pdf, .html, or plaintext)"},
					&cli.StringFlag{Name: "text", Usage: "raw text to ingest"},
					&cli.StringFlag{Name: "config", Usage: "YAML config file with urls and defaults"},
					&cli.StringFlag{Name: "db", Usage: "path to the article database"},
					&cli.IntFlag{Name: "workers", Value: 4, Usage: "concurrent fetch workers"},
					&cli.IntFlag{Name: "sentences", Value: 3, Usage: "summary length in sentences"},
					&cli.BoolFlag{Name: "use-ai", Usage: "use the model-backed takeaway strategy"},
					&cli.BoolFlag{Name: "quiet", Usage: "log errors only"},
				},
			},
			{
				Name:   "related",
				Usage:  "rank stored articles by similarity to a target article",
				Action: query.RelatedAction,
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true, Usage: "target article ID"},
					&cli.IntFlag{Name: "top", Value: 5, Usage: "number of matches to return"},
					&cli.StringFlag{Name: "db", Usage: "path to the article database"},
				},
			},
			{
				Name:   "list",
				Usage:  "list stored articles",
				Action: query.ListAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "path to the article database"},
				},
			},
			{
				Name:   "summarize",
				Usage:  "print an extractive summary of a file or text",
				Action: query.SummarizeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "plaintext file to summarize"},
					&cli.StringFlag{Name: "text", Usage: "raw text to summarize"},
					&cli.IntFlag{Name: "sentences", Value: 3, Usage: "summary length in sentences"},
				},
			},
			{
				Name:   "tags",
				Usage:  "print candidate tags for a file or text",
				Action: query.TagsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "plaintext file to tag"},
					&cli.StringFlag{Name: "text", Usage: "raw text to tag"},
				},
			},
			{
				Name:   "takeaways",
				Usage:  "print categorized key takeaways for a file or text",
				Action: query.TakeawaysAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "plaintext file to analyze"},
					&cli.StringFlag{Name: "text", Usage: "raw text to analyze"},
					&cli.BoolFlag{Name: "use-ai", Usage: "use the model-backed takeaway strategy"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
