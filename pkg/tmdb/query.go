package tmdb

import "strings"

// Queries often arrive with a language or release qualifier appended, such as
// "jawan hindi". TMDB matches far better on the bare title, so qualifiers are
// stripped before the query is sent upstream.
var languageKeywords = map[string]struct{}{
	"hindi":      {},
	"tamil":      {},
	"telugu":     {},
	"malayalam":  {},
	"kannada":    {},
	"bengali":    {},
	"dubbed":     {},
	"dual audio": {},
}

// BaseQuery strips known language keywords from a search query. A query made
// up entirely of keywords is returned unchanged.
func BaseQuery(query string) string {
	parts := strings.Fields(query)
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if _, ok := languageKeywords[strings.ToLower(part)]; !ok {
			kept = append(kept, part)
		}
	}

	base := strings.Join(kept, " ")
	if base == "" {
		return query
	}

	return base
}
