package ingest

import (
	"errors"
	"strings"
	"testing"

	"SentimentScanner/internal/domain"
)

func TestJSONArray(t *testing.T) {
	t.Parallel()

	input := `[
		{"title": "First", "summary": "one", "published": "2025-07-07", "url": "https://example.com/1", "source": "Wire"},
		{"title": "Second"}
	]`

	records, err := JSONIngestor{}.Records(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if title, ok := records[1].Field(FieldTitle); !ok || title != "Second" {
		t.Fatalf("unexpected title: %q", title)
	}
	if _, ok := records[1].Field(FieldSummary); ok {
		t.Fatal("expected summary to be absent")
	}
}

func TestJSONSingleObject(t *testing.T) {
	t.Parallel()

	input := `{"title": "Lone article", "url": "https://www.reuters.com/markets"}`

	records, err := JSONIngestor{}.Records(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Records error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("single object must become one record, got %d", len(records))
	}

	article, err := MapRecord(records[0])
	if err != nil {
		t.Fatalf("MapRecord error: %v", err)
	}
	if article.Title != "Lone article" {
		t.Fatalf("unexpected title: %q", article.Title)
	}
	if article.Source != "www.reuters.com" {
		t.Fatalf("expected host fallback source, got %q", article.Source)
	}
}

func TestJSONInvalid(t *testing.T) {
	t.Parallel()

	_, err := JSONIngestor{}.Records(strings.NewReader("not json at all"))
	if err == nil {
		t.Fatal("expected schema error")
	}

	var schemaErr *domain.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *domain.SchemaError, got %T", err)
	}
}
