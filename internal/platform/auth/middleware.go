package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/club-registration/internal/platform/logging"
)

// SchemeName is the OpenAPI security scheme guarding registration endpoints.
const SchemeName = "bearerAuth"

// userContextKey is the context key for the authenticated user.
type userContextKey struct{}

// BearerSecurity is the Security requirement for operations that act on the
// caller's own registration.
func BearerSecurity() []map[string][]string {
	return []map[string][]string{{SchemeName: {}}}
}

// SecurityScheme describes Firebase ID tokens for the OpenAPI document.
func SecurityScheme() *huma.SecurityScheme {
	return &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
		Description:  "Firebase ID token of the registering user",
	}
}

// NewAuthMiddleware verifies bearer tokens on operations that declare Security.
// Operations without it pass through untouched.
func NewAuthMiddleware(api huma.API, verifier Verifier) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if len(ctx.Operation().Security) == 0 {
			next(ctx)
			return
		}

		token, err := ExtractBearerToken(ctx.Header("Authorization"))
		if err != nil {
			reason := "no_token"
			if errors.Is(err, ErrInvalidToken) {
				reason = "malformed_header"
			}
			applog.LogWarn(ctx.Context(), "auth failed: missing or invalid header",
				zap.String("reason", reason))
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}

		user, err := verifier.Verify(ctx.Context(), token)
		if err != nil {
			reason := categorizeAuthError(err)
			applog.LogWarn(ctx.Context(), "auth failed: token verification failed",
				zap.String("reason", reason))

			if errors.Is(err, ErrCertificateFetch) {
				ctx.SetHeader("Retry-After", "30")
				_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable,
					"authentication service temporarily unavailable")
				return
			}
			ctx.SetHeader("WWW-Authenticate", "Bearer")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// Later log lines for this request carry the caller's UID.
		reqCtx := context.WithValue(ctx.Context(), userContextKey{}, user)
		reqCtx = applog.WithLogger(reqCtx, applog.LoggerFromContext(reqCtx).With(zap.String("uid", user.UID)))
		next(huma.WithContext(ctx, reqCtx))
	}
}

// categorizeAuthError returns a safe category string for logging.
func categorizeAuthError(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, ErrTokenRevoked):
		return "token_revoked"
	case errors.Is(err, ErrUserDisabled):
		return "user_disabled"
	case errors.Is(err, ErrCertificateFetch):
		return "certificate_fetch_failed"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	default:
		return "unknown"
	}
}

// UserFromContext returns the verified caller, or nil on unsecured operations.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userContextKey{}).(*User)
	return user
}
