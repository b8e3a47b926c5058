package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"SentimentScanner/internal/domain"
)

// JSONIngestor maps structured uploads: either an array of objects or a
// single object, which is treated as a one-element batch.
type JSONIngestor struct{}

var _ Ingestor = JSONIngestor{}

// Format names the ingestor for logs and error wrapping.
func (JSONIngestor) Format() string {
	return "json"
}

// Records decodes the payload and wraps each object as a record.
func (JSONIngestor) Records(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.SchemaError{Reason: fmt.Sprintf("read json: %v", err)}
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		var single map[string]any
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, &domain.SchemaError{Reason: fmt.Sprintf("invalid json: %v", err)}
		}
		items = []map[string]any{single}
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, jsonRecord{object: item})
	}
	return records, nil
}

type jsonRecord struct {
	object map[string]any
}

func (j jsonRecord) Field(name string) (string, bool) {
	value, ok := j.object[name]
	if !ok || value == nil {
		return "", false
	}

	switch typed := value.(type) {
	case string:
		return typed, true
	default:
		return fmt.Sprint(typed), true
	}
}
