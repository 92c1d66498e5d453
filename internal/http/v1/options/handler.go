// Package options serves the option lists of the registration form.
package options

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/club-registration/internal/platform/pagination"
	"github.com/janisto/club-registration/internal/service/catalog"
)

// Register wires the nationality, gender and club listings.
func Register(api huma.API, cat *catalog.Catalog, prefix string) {
	registerNames(api, cat, prefix, catalog.Nationalities, "list-nationalities", "List nationalities")
	registerNames(api, cat, prefix, catalog.Genders, "list-genders", "List genders")

	huma.Register(api, huma.Operation{
		OperationID: "list-clubs",
		Method:      http.MethodGet,
		Path:        "/clubs",
		Summary:     "List clubs",
		Description: "Returns the clubs a registrant can be affiliated with, with their logo references.",
		Tags:        []string{"Options"},
	}, func(_ context.Context, input *ListInput) (*ClubListOutput, error) {
		clubs := make([]Club, 0)
		for _, c := range cat.Clubs() {
			clubs = append(clubs, Club{Name: c.Name, Logo: c.Logo})
		}
		page, err := paginate(clubs, input, prefix+"/clubs", func(c Club) string { return c.Name }, "club")
		if err != nil {
			return nil, err
		}
		return &ClubListOutput{
			Link: page.LinkHeader,
			Body: ClubList{Items: page.Items, Total: page.Total},
		}, nil
	})
}

func registerNames(api huma.API, cat *catalog.Catalog, prefix string, list catalog.List, id, summary string) {
	path := "/" + string(list)
	huma.Register(api, huma.Operation{
		OperationID: id,
		Method:      http.MethodGet,
		Path:        path,
		Summary:     summary,
		Description: "Returns the accepted values in display order. Submissions must use one of these names exactly.",
		Tags:        []string{"Options"},
	}, func(_ context.Context, input *ListInput) (*OptionListOutput, error) {
		names := cat.Names(list)
		opts := make([]Option, len(names))
		for i, n := range names {
			opts[i] = Option{Name: n}
		}
		page, err := paginate(opts, input, prefix+path, func(o Option) string { return o.Name }, string(list))
		if err != nil {
			return nil, err
		}
		return &OptionListOutput{
			Link: page.LinkHeader,
			Body: OptionList{Items: page.Items, Total: page.Total},
		}, nil
	})
}

func paginate[T any](items []T, input *ListInput, path string, key func(T) string, kind string) (pagination.Page[T], error) {
	cursor, err := pagination.DecodeCursorFor(input.Cursor, kind)
	if err != nil {
		return pagination.Page[T]{}, huma.Error400BadRequest("invalid cursor")
	}
	return pagination.Paginate(items, cursor, input.DefaultLimit(), pagination.Listing[T]{
		Kind: kind,
		Key:  key,
		Path: path,
	}), nil
}
