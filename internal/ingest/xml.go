package ingest

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"

	"SentimentScanner/internal/domain"
)

// XMLIngestor maps syndication-feed or generic XML uploads. It first tries a
// strict RSS parse (which preserves the per-item source element), then the
// universal feed parser for Atom payloads, and finally a generic scan for
// item/entry elements.
type XMLIngestor struct{}

var _ Ingestor = XMLIngestor{}

// Format names the ingestor for logs and error wrapping.
func (XMLIngestor) Format() string {
	return "xml/rss"
}

// Records parses the payload with the fallback chain described above.
func (XMLIngestor) Records(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.SchemaError{Reason: "read xml: " + err.Error()}
	}

	if records := parseSyndication(raw); len(records) > 0 {
		return records, nil
	}

	if records, ok := parseGenericXML(raw); ok {
		return records, nil
	}

	return nil, &domain.SchemaError{Reason: "could not parse xml/rss content"}
}

// parseSyndication attempts the two feed parsers and returns nil when
// neither yields entries.
func parseSyndication(raw []byte) []Record {
	rssParser := &rss.Parser{}
	if feed, err := rssParser.Parse(bytes.NewReader(raw)); err == nil && len(feed.Items) > 0 {
		return RSSRecords(feed.Items)
	}

	if feed, err := gofeed.NewParser().Parse(bytes.NewReader(raw)); err == nil && len(feed.Items) > 0 {
		records := make([]Record, 0, len(feed.Items))
		for _, item := range feed.Items {
			records = append(records, feedRecord{item: item})
		}
		return records
	}

	return nil
}

// RSSRecords wraps strict-RSS items as records. Shared with the live-feed
// client, which parses the same entry shape.
func RSSRecords(items []*rss.Item) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, rssRecord{item: item})
	}
	return records
}

type rssRecord struct {
	item *rss.Item
}

func (r rssRecord) Field(name string) (string, bool) {
	switch name {
	case FieldTitle:
		return r.item.Title, true
	case FieldSummary:
		return r.item.Description, r.item.Description != ""
	case FieldPublished:
		return r.item.PubDate, r.item.PubDate != ""
	case FieldURL:
		return r.item.Link, r.item.Link != ""
	case FieldSource:
		if r.item.Source != nil && r.item.Source.Title != "" {
			return r.item.Source.Title, true
		}
		return "", false
	}
	return "", false
}

type feedRecord struct {
	item *gofeed.Item
}

func (f feedRecord) Field(name string) (string, bool) {
	switch name {
	case FieldTitle:
		return f.item.Title, true
	case FieldSummary:
		return f.item.Description, f.item.Description != ""
	case FieldPublished:
		if f.item.Published != "" {
			return f.item.Published, true
		}
		return f.item.Updated, f.item.Updated != ""
	case FieldURL:
		return f.item.Link, f.item.Link != ""
	}
	return "", false
}

// xmlItem is the generic element shape searched for in non-feed XML.
type xmlItem struct {
	Title       string `xml:"title"`
	Summary     string `xml:"summary"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	Published   string `xml:"published"`
	Link        string `xml:"link"`
	Source      string `xml:"source"`
}

// parseGenericXML walks the document and collects item elements anywhere in
// the tree, falling back to entry elements when no item exists. The second
// return reports whether the payload was well-formed XML at all.
func parseGenericXML(raw []byte) ([]Record, bool) {
	var items, entries []xmlItem

	decoder := xml.NewDecoder(bytes.NewReader(raw))
	sawElement := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true

		switch start.Name.Local {
		case "item":
			var item xmlItem
			if decoder.DecodeElement(&item, &start) == nil {
				items = append(items, item)
			}
		case "entry":
			var entry xmlItem
			if decoder.DecodeElement(&entry, &start) == nil {
				entries = append(entries, entry)
			}
		}
	}

	if !sawElement {
		return nil, false
	}
	if len(items) == 0 {
		items = entries
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, xmlRecord{item: item})
	}
	return records, true
}

type xmlRecord struct {
	item xmlItem
}

func (x xmlRecord) Field(name string) (string, bool) {
	switch name {
	case FieldTitle:
		return x.item.Title, true
	case FieldSummary:
		if x.item.Summary != "" {
			return x.item.Summary, true
		}
		return x.item.Description, x.item.Description != ""
	case FieldPublished:
		if x.item.PubDate != "" {
			return x.item.PubDate, true
		}
		return x.item.Published, x.item.Published != ""
	case FieldURL:
		return x.item.Link, x.item.Link != ""
	case FieldSource:
		return x.item.Source, x.item.Source != ""
	}
	return "", false
}
