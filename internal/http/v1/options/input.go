package options

import "github.com/janisto/club-registration/internal/platform/pagination"

// ListInput defines query parameters for the option listings.
type ListInput struct {
	pagination.Params
}
