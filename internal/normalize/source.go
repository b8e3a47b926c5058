package normalize

import (
	"net/url"
	"strings"

	"SentimentScanner/internal/domain"
)

// ResolveSource determines the originating publication name for an entry.
// A non-empty explicit source wins; otherwise the host of the entry link is
// used; with neither available the Unknown sentinel is returned. Extraction
// failures fall through to the next rule, never an error.
func ResolveSource(explicit, link string) string {
	if name := strings.TrimSpace(explicit); name != "" {
		return name
	}

	if link != "" {
		if parsed, err := url.Parse(strings.TrimSpace(link)); err == nil && parsed.Host != "" {
			return parsed.Host
		}
	}

	return domain.UnknownSource
}
