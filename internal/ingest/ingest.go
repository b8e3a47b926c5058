// Package ingest normalizes heterogeneous article sources into canonical
// records that share one mapping path into the domain model.
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"SentimentScanner/internal/domain"
)

// Canonical field names a Record may expose.
const (
	FieldTitle     = "title"
	FieldSummary   = "summary"
	FieldPublished = "published"
	FieldURL       = "url"
	FieldSource    = "source"
)

// Record exposes the raw fields of one source item by canonical name.
// The second return reports whether the source carried the field at all.
type Record interface {
	Field(name string) (string, bool)
}

// Ingestor parses one upload format into raw records.
type Ingestor interface {
	Format() string
	Records(r io.Reader) ([]Record, error)
}

// Registry keeps a mapping from file extensions to ingestors.
type Registry struct {
	ingestors map[string]Ingestor
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{ingestors: map[string]Ingestor{}}
}

// Register binds an ingestor to one or more file extensions.
func (r *Registry) Register(ing Ingestor, extensions ...string) {
	if r.ingestors == nil {
		r.ingestors = map[string]Ingestor{}
	}
	for _, ext := range extensions {
		r.ingestors[strings.ToLower(ext)] = ing
	}
}

// ForFile resolves the ingestor for a file name by its extension. Unsupported
// extensions yield a schema error naming the offending type.
func (r *Registry) ForFile(name string) (Ingestor, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ing, ok := r.ingestors[ext]; ok {
		return ing, nil
	}
	return nil, &domain.SchemaError{Reason: fmt.Sprintf("unsupported file type: %s", ext)}
}
