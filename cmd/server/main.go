package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/janisto/club-registration/internal/http/health"
	"github.com/janisto/club-registration/internal/http/v1/routes"
	"github.com/janisto/club-registration/internal/platform/auth"
	"github.com/janisto/club-registration/internal/platform/config"
	"github.com/janisto/club-registration/internal/platform/firebase"
	applog "github.com/janisto/club-registration/internal/platform/logging"
	"github.com/janisto/club-registration/internal/platform/metrics"
	appmiddleware "github.com/janisto/club-registration/internal/platform/middleware"
	"github.com/janisto/club-registration/internal/platform/respond"
	"github.com/janisto/club-registration/internal/service/catalog"
	"github.com/janisto/club-registration/internal/service/registration"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiPrefix = "/v1"
	docsPath  = "/api-docs"
)

// dependencies are the collaborators the HTTP handler is built from.
type dependencies struct {
	verifier auth.Verifier
	service  *registration.Service
	catalog  *catalog.Catalog
	gatherer prometheus.Gatherer
}

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}
	if err := run(); err != nil {
		applog.LogFatal(context.Background(), "server failed", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func run() error {
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	variant, err := registration.ParseVariant(cfg.Variant)
	if err != nil {
		return fmt.Errorf("REGISTRATION_VARIANT: %w", err)
	}

	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:       cfg.ProjectID,
		CredentialsFile: cfg.GoogleApplicationCredentials,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(ctx, "firebase close error", err)
		}
	}()

	cat := catalog.Default()
	svc := registration.NewService(
		registration.NewFirestoreStore(clients.Firestore),
		cat,
		registration.WithVariant(variant),
		registration.WithLocation(cfg.Location),
		registration.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	)

	handler := newRouter(dependencies{
		verifier: auth.NewFirebaseVerifier(clients.Auth),
		service:  svc,
		catalog:  cat,
		gatherer: prometheus.DefaultGatherer,
	})

	applog.LogInfo(ctx, "registration configured",
		zap.String("variant", string(variant)),
		zap.String("timezone", cfg.Location.String()),
	)
	return serve(newServer(":"+cfg.Port, handler))
}

func newRouter(deps dependencies) *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler(apiPrefix))
	router.MethodNotAllowed(respond.MethodNotAllowedHandler(apiPrefix))

	router.Use(
		appmiddleware.Security(apiPrefix+docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only run behind a trusted proxy such as Cloud Run.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(apiPrefix),
	)

	router.Get("/health", health.Handler(Version))
	router.Handle("/metrics", promhttp.HandlerFor(deps.gatherer, promhttp.HandlerOpts{}))

	router.Route(apiPrefix, func(r chi.Router) {
		cfg := huma.DefaultConfig("Club Registration API", Version)
		cfg.DocsPath = docsPath
		cfg.Servers = []*huma.Server{{URL: apiPrefix}}
		cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			auth.SchemeName: auth.SecurityScheme(),
		}
		// Huma negotiates by exact match, so wildcard or unknown Accept values get JSON.
		api := humachi.New(r, cfg)
		api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

		routes.Register(api, deps.verifier, deps.catalog, deps.service)
	})

	return router
}

// addCBORContent documents application/cbor wherever application/json is accepted
// or produced.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// serve runs srv until SIGINT or SIGTERM, then shuts it down gracefully.
func serve(srv *http.Server) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-listenErr:
		return err
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
