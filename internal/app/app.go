package app

import (
	"log/slog"

	"SentimentScanner/internal/config"
	"SentimentScanner/internal/infrastructure/feed"
	"SentimentScanner/internal/infrastructure/lexicon"
	"SentimentScanner/internal/ingest"
	"SentimentScanner/internal/logging"
	"SentimentScanner/internal/ports"
	"SentimentScanner/internal/sentiment"
	"SentimentScanner/internal/usecase"
)

// Application wires configs to use cases and shared components.
type Application struct {
	cfg      config.Config
	analyzer *usecase.Analyzer
}

// New builds a runnable application instance. The oracles are constructed
// once here and reused across runs.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := ingest.NewRegistry()
	registry.Register(ingest.CSVIngestor{}, "csv")
	registry.Register(ingest.JSONIngestor{}, "json")
	registry.Register(ingest.XMLIngestor{}, "xml", "rss")

	var pattern ports.PolarityOracle
	if cfg.Oracle.Endpoint != "" {
		pattern = lexicon.NewPatternClient(cfg.Oracle)
	}

	scorer := sentiment.NewScorer(pattern, lexicon.NewVADER(), baseLogger.With("component", "scorer"))
	liveFeed := feed.NewClient(cfg.Feed, baseLogger.With("component", "feed"))

	analyzer := usecase.NewAnalyzer(usecase.AnalyzerDeps{
		Feed:     liveFeed,
		Registry: registry,
		Scorer:   scorer,
		Logger:   baseLogger.With("component", "analyzer"),
	})

	return &Application{cfg: cfg, analyzer: analyzer}
}

// Analyzer exposes the analysis use case to the caller.
func (a *Application) Analyzer() *usecase.Analyzer {
	return a.analyzer
}
