package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor indicates the cursor could not be decoded or belongs to another listing.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor is an opaque position in a listing: the kind of listing and the last key seen.
type Cursor struct {
	Kind string
	Key  string
}

// Encode returns the URL-safe Base64 form of the cursor.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Kind + ":" + c.Key))
}

// DecodeCursor parses a cursor string. An empty string is the start of the listing.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	kind, key, ok := strings.Cut(string(raw), ":")
	if !ok {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Kind: kind, Key: key}, nil
}

// DecodeCursorFor parses a cursor and rejects cursors minted for a different listing.
func DecodeCursorFor(s, kind string) (Cursor, error) {
	c, err := DecodeCursor(s)
	if err != nil {
		return Cursor{}, err
	}
	if s != "" && c.Kind != kind {
		return Cursor{}, ErrInvalidCursor
	}
	return c, nil
}
