package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/club-registration/internal/http/v1/options"
	"github.com/janisto/club-registration/internal/http/v1/registration"
	"github.com/janisto/club-registration/internal/platform/auth"
	"github.com/janisto/club-registration/internal/service/catalog"
)

// Register wires all v1 routes into the provided API router.
func Register(api huma.API, verifier auth.Verifier, cat *catalog.Catalog, svc registration.Service) {
	prefix := apiPrefix(api)

	// Operations declaring bearer security are checked here; the rest pass through.
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	options.Register(api, cat, prefix)
	registration.Register(api, svc, prefix)
}

// apiPrefix returns the path of the first configured server so Link and
// Location headers carry the mount point.
func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
