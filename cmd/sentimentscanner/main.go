package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"SentimentScanner/internal/app"
	"SentimentScanner/internal/config"
	"SentimentScanner/internal/domain"
	"SentimentScanner/internal/logging"
	"SentimentScanner/internal/report"
	"SentimentScanner/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	keyword := flag.String("keyword", "", "keyword to search the live news feed for")
	file := flag.String("file", "", "path to a csv/json/xml/rss file to analyze")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	analysis, err := run(ctx, application, *keyword, *file)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		fmt.Fprintln(os.Stderr, failureMessage(err))
		os.Exit(1)
	}

	if len(analysis) == 0 {
		fmt.Println("no articles found")
		return
	}

	report.RenderTable(os.Stdout, analysis)
	fmt.Println()
	report.RenderSummary(os.Stdout, usecase.BuildSummary(analysis))
}

func run(ctx context.Context, application *app.Application, keyword, file string) (domain.Analysis, error) {
	switch {
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()
		return application.Analyzer().AnalyzeFile(ctx, filepath.Base(file), f)
	case keyword != "":
		return application.Analyzer().AnalyzeKeyword(ctx, keyword)
	default:
		return nil, fmt.Errorf("either -keyword or -file is required")
	}
}

// failureMessage keeps the three end states distinguishable for the user:
// schema problems name the input, transport problems name the feed.
func failureMessage(err error) string {
	var schemaErr *domain.SchemaError
	if errors.As(err, &schemaErr) {
		return "invalid input: " + schemaErr.Reason
	}

	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		return "could not reach the news feed: " + transportErr.Error()
	}

	return "could not complete the analysis: " + err.Error()
}
