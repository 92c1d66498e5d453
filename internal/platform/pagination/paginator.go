package pagination

import (
	"net/url"
	"strconv"
)

// Page is one window over an ordered listing.
type Page[T any] struct {
	Items      []T
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Listing describes how to key and link a slice being paginated.
type Listing[T any] struct {
	Kind  string         // cursor kind, e.g. "club"
	Key   func(T) string // stable key of an item
	Path  string         // path used in Link headers
	Query url.Values     // extra query params kept in Link headers
}

// Paginate returns the page of items following the cursor. A cursor whose key is
// no longer present restarts the listing from the beginning.
func Paginate[T any](items []T, cursor Cursor, limit int, l Listing[T]) Page[T] {
	total := len(items)

	start := 0
	if cursor.Key != "" {
		for i, item := range items {
			if l.Key(item) == cursor.Key {
				start = i + 1
				break
			}
		}
	}
	end := min(start+limit, total)
	window := items[start:end]

	page := Page[T]{Items: window, Total: total}
	if end < total && len(window) > 0 {
		page.NextCursor = Cursor{Kind: l.Kind, Key: l.Key(window[len(window)-1])}.Encode()
	}
	if start > 0 {
		// The previous page starts right after the item limit+1 positions back.
		prevKey := ""
		if start > limit {
			prevKey = l.Key(items[start-limit-1])
		}
		page.PrevCursor = Cursor{Kind: l.Kind, Key: prevKey}.Encode()
	}

	q := l.Query
	if limit > 0 {
		q = withParam(q, "limit", strconv.Itoa(limit))
	}
	page.LinkHeader = BuildLinkHeader(l.Path, q, page.NextCursor, page.PrevCursor)
	return page
}
