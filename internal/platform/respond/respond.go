// Package respond writes RFC 9457 problem documents for responses produced outside
// huma operations: unknown routes, unsupported methods and recovered panics.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/club-registration/internal/platform/logging"
)

const (
	schemaPath         = "/schemas/ErrorModel.json"
	contentTypeJSON    = "application/problem+json"
	contentTypeCBOR    = "application/problem+cbor"
	internalErrorText  = "internal server error"
	notFoundDetailText = "resource not found"
)

// problem mirrors huma.ErrorModel plus the $schema link huma adds to its own errors.
type problem struct {
	Schema string `json:"$schema,omitempty" cbor:"$schema,omitempty"`
	Title  string `json:"title,omitempty"   cbor:"title,omitempty"`
	Status int    `json:"status,omitempty"  cbor:"status,omitempty"`
	Detail string `json:"detail,omitempty"  cbor:"detail,omitempty"`
}

// NotFoundHandler returns a 404 problem for unmatched routes. apiPrefix is where
// huma is mounted; the problem's schema link points below it.
func NotFoundHandler(apiPrefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, apiPrefix, http.StatusNotFound, notFoundDetailText)
	}
}

// MethodNotAllowedHandler returns a 405 problem and lists the allowed methods.
func MethodNotAllowedHandler(apiPrefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(r); len(allowed) > 0 && w.Header().Get("Allow") == "" {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		WriteProblem(w, r, apiPrefix, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", r.Method))
	}
}

// Recoverer converts panics into a 500 problem. http.ErrAbortHandler is re-panicked
// so net/http can abort the connection, and nothing is written when the handler
// already started the response.
func Recoverer(apiPrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				applog.LogError(r.Context(), "panic recovered", nil,
					zap.Any("panic", rec), zap.Stack("stack"))
				if rw.wroteHeader {
					return
				}
				WriteProblem(rw.ResponseWriter, r, apiPrefix, http.StatusInternalServerError, internalErrorText)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

// WriteProblem writes a problem document, encoded as CBOR when the client prefers it.
// The schema link resolves against the huma API mounted at apiPrefix.
func WriteProblem(w http.ResponseWriter, r *http.Request, apiPrefix string, status int, detail string) {
	path := apiPrefix + schemaPath
	p := problem{
		Schema: schemaURL(r, path),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}

	h := w.Header()
	h.Set("Link", "<"+path+`>; rel="describedBy"`)

	if prefersCBOR(r.Header.Get("Accept")) {
		if body, err := cbor.Marshal(p); err == nil {
			h.Set("Content-Type", contentTypeCBOR)
			w.WriteHeader(status)
			_, _ = w.Write(body)
			return
		}
	}

	body, err := json.Marshal(p)
	if err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	h.Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func schemaURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}

func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	var allowed []string
	for _, m := range []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	} {
		if rctx.Routes.Match(chi.NewRouteContext(), m, r.URL.Path) {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

// mediaRange is one entry of an Accept header.
type mediaRange struct {
	cbor        bool
	q           float64
	specificity int
}

// prefersCBOR ranks Accept entries by q-value, then by specificity
// (problem+ types over base types over wildcards). JSON wins ties.
func prefersCBOR(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}
	bestCBOR := mediaRange{q: -1}
	bestJSON := mediaRange{q: -1}
	for part := range strings.SplitSeq(accept, ",") {
		mr, ok := parseMediaRange(part)
		if !ok || mr.q <= 0 {
			continue
		}
		best := &bestJSON
		if mr.cbor {
			best = &bestCBOR
		}
		if mr.q > best.q || (mr.q == best.q && mr.specificity > best.specificity) {
			*best = mr
		}
	}
	if bestCBOR.q < 0 {
		return false
	}
	if bestCBOR.q != bestJSON.q {
		return bestCBOR.q > bestJSON.q
	}
	return bestCBOR.specificity > bestJSON.specificity
}

func parseMediaRange(s string) (mediaRange, bool) {
	params := strings.Split(s, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))

	mr := mediaRange{q: 1}
	switch mediaType {
	case "application/problem+cbor":
		mr.cbor, mr.specificity = true, 2
	case "application/cbor":
		mr.cbor, mr.specificity = true, 1
	case "application/problem+json":
		mr.specificity = 2
	case "application/json":
		mr.specificity = 1
	case "*/*", "application/*":
		mr.specificity = 0
	default:
		return mediaRange{}, false
	}

	for _, p := range params[1:] {
		key, value, found := strings.Cut(strings.TrimSpace(p), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		if q, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			mr.q = q
		}
	}
	return mr, true
}

// responseWriter records whether the response has started.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
