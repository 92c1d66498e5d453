package pagination

import (
	"fmt"
	"maps"
	"net/url"
	"strings"
)

// BuildLinkHeader renders an RFC 8288 Link header with next and prev relations.
// The query is copied, never mutated.
func BuildLinkHeader(path string, query url.Values, nextCursor, prevCursor string) string {
	rels := []struct{ name, cursor string }{
		{"next", nextCursor},
		{"prev", prevCursor},
	}
	links := make([]string, 0, len(rels))
	for _, rel := range rels {
		if rel.cursor == "" {
			continue
		}
		q := withParam(query, "cursor", rel.cursor)
		links = append(links, fmt.Sprintf(`<%s?%s>; rel="%s"`, path, q.Encode(), rel.name))
	}
	return strings.Join(links, ", ")
}

// withParam returns a copy of v with key set to value. Setting replaces the
// slice, so a shallow clone leaves v intact.
func withParam(v url.Values, key, value string) url.Values {
	out := maps.Clone(v)
	if out == nil {
		out = url.Values{}
	}
	out.Set(key, value)
	return out
}
