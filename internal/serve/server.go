package serve

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chris-lally/lally/internal/catalog"
	"github.com/chris-lally/lally/internal/errors"
	"github.com/chris-lally/lally/internal/export"
)

// DefaultAddr is the default listen address for the registry server.
const DefaultAddr = ":4100"

// Options configures the registry server.
type Options struct {
	// Addr is the listen address (default ":4100").
	Addr string

	// TemplatesDir optionally overrides the embedded template root
	// with an on-disk directory.
	TemplatesDir string

	// Watch rebuilds the registry documents when files under
	// TemplatesDir change and notifies websocket clients.
	Watch bool
}

// Server serves the exported registry documents over HTTP.
type Server struct {
	catalog *catalog.Catalog
	opts    Options
	reload  *ReloadServer
	metrics *serveMetrics

	mu       sync.RWMutex
	itemDocs map[string][]byte
	manifest []byte
}

// New creates a registry server for the given catalog.
func New(cat *catalog.Catalog, opts Options, mopts ...MetricsOption) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.TemplatesDir != "" {
		cat = cat.WithTemplates(os.DirFS(opts.TemplatesDir))
	}

	config := defaultMetricsConfig()
	for _, opt := range mopts {
		opt(&config)
	}

	return &Server{
		catalog:  cat,
		opts:     opts,
		reload:   NewReloadServer(),
		metrics:  newServeMetrics(config),
		itemDocs: make(map[string][]byte),
	}
}

// Rebuild regenerates the served registry documents from the catalog.
func (s *Server) Rebuild() error {
	result, err := export.New(s.catalog).Build()
	s.metrics.recordRebuild(err)
	if err != nil {
		return err
	}

	itemDocs := make(map[string][]byte, len(result.Items))
	for _, doc := range result.Items {
		data, err := marshalDoc(doc)
		if err != nil {
			return err
		}
		itemDocs[doc.Name] = data
	}
	manifest, err := marshalDoc(result.Manifest)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.itemDocs = itemDocs
	s.manifest = manifest
	s.mu.Unlock()

	return nil
}

// Handler returns the HTTP handler for the registry server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.metrics.middleware)
	r.Use(OpenTelemetry(WithRequestFilter(traceworthy)))

	r.Get("/registry.json", s.handleManifest)
	r.Get("/r/{name}.json", s.handleItem)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/__reload", s.reload.HandleWebSocket)

	return r
}

// traceworthy filters out health and infrastructure endpoints so spans
// cover only registry document requests.
func traceworthy(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/metrics", "/__reload":
		return false
	}
	return true
}

// Run serves the registry until ctx is cancelled. In watch mode it
// also rebuilds documents when template files change.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Rebuild(); err != nil {
		return err
	}

	if s.opts.Watch && s.opts.TemplatesDir != "" {
		watcher := NewWatcher(WatcherConfig{Dir: s.opts.TemplatesDir})
		watcher.OnChange(func(c Change) {
			if err := s.Rebuild(); err != nil {
				s.reload.NotifyError(err.Error())
				return
			}
			s.reload.NotifyRebuild(c.Path)
		})
		go watcher.Start(ctx)
	}

	srv := &http.Server{
		Addr:    s.opts.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.reload.Close()
		srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E131").
				WithDetail("Could not listen on " + s.opts.Addr).
				Wrap(err)
		}
		return nil
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	data := s.manifest
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.RLock()
	data, ok := s.itemDocs[name]
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "unknown registry item",
			"name":  name,
		})
		return
	}
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// marshalDoc marshals a registry document with indentation, matching
// the on-disk export format byte for byte.
func marshalDoc(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.New("E131").Wrap(err)
	}
	return append(data, '\n'), nil
}
