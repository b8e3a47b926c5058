package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"SentimentScanner/internal/domain"
)

// CSVIngestor maps tabular uploads. The header row must contain a title
// column; summary, published, url and source columns are optional.
type CSVIngestor struct{}

var _ Ingestor = CSVIngestor{}

// Format names the ingestor for logs and error wrapping.
func (CSVIngestor) Format() string {
	return "csv"
}

// Records reads the full table and wraps each data row as a record.
func (CSVIngestor) Records(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &domain.SchemaError{Reason: fmt.Sprintf("invalid csv: %v", err)}
	}
	if len(rows) == 0 {
		return nil, &domain.SchemaError{Reason: "csv has no header row"}
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := header[FieldTitle]; !ok {
		return nil, &domain.SchemaError{Reason: "csv must contain a title column"}
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, csvRecord{header: header, row: row})
	}
	return records, nil
}

type csvRecord struct {
	header map[string]int
	row    []string
}

func (c csvRecord) Field(name string) (string, bool) {
	idx, ok := c.header[name]
	if !ok || idx >= len(c.row) {
		return "", false
	}
	return c.row[idx], true
}
