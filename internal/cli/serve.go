package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bio-traven/karyoploteR/pkg/buildinfo"
	"github.com/bio-traven/karyoploteR/pkg/cache"
	"github.com/bio-traven/karyoploteR/pkg/pipeline"
)

const (
	defaultServeAddr  = ":8080"
	serveReadTimeout  = 15 * time.Second
	serveWriteTimeout = 120 * time.Second // remote assembly fetches can be slow
)

// serveCommand creates the serve command for the HTTP plotting API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP plotting server",
		Long: `Run the HTTP plotting server.

Endpoints:

  GET  /healthz     liveness probe with version info
  GET  /v1/genomes  embedded assembly catalog
  POST /v1/plots    render a plot; the request body carries the plot
                    options as JSON and the response is the rendered
                    SVG or PNG

With --redis the cache is shared across instances; otherwise the local
file cache is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := serveCache(cmd.Context(), redisURL, noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(backend, nil, c.Logger)
			defer runner.Close()

			srv := newServer(runner, c.Logger)
			return srv.listen(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared cache (redis://host:port/db)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// serveCache picks the cache backend for the server.
func serveCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		return cache.NewRedisCache(ctx, redisURL)
	}
	return newCache(false)
}

// server is the HTTP plotting API.
type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, logger *log.Logger) *server {
	return &server{runner: runner, logger: logger}
}

// listen serves until the context is cancelled, then shuts down
// gracefully.
func (s *server) listen(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  serveReadTimeout,
		WriteTimeout: serveWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// routes builds the chi router.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/genomes", s.handleGenomes)
		r.Post("/plots", s.handlePlot)
	})
	return r
}

// requestID tags every request with a UUID, echoed in the response so
// clients can correlate logs.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(req.Context(), requestIDKey, id)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

const requestIDKey ctxKey = 1

// logRequests logs one line per request with the request ID.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		s.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", req.Context().Value(requestIDKey))
	})
}

// handleHealth reports liveness and build info.
func (s *server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// genomeInfo is one catalog entry in the /v1/genomes response.
type genomeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Chromosomes int    `json:"chromosomes"`
	TotalLength int64  `json:"total_length"`
}

// handleGenomes lists the embedded assemblies.
func (s *server) handleGenomes(w http.ResponseWriter, req *http.Request) {
	assemblies, err := loadBuiltinAssemblies()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	infos := make([]genomeInfo, 0, len(assemblies))
	for _, a := range assemblies {
		infos = append(infos, genomeInfo{
			Name:        a.Name,
			Description: a.Description,
			Chromosomes: len(a.Chromosomes),
			TotalLength: totalLength(a),
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

// plotRequest is the safe subset of pipeline options the API accepts.
// File paths are deliberately absent: the server never reads data from
// its own filesystem on behalf of a client.
type plotRequest struct {
	Assembly  string  `json:"assembly"`
	Cytobands bool    `json:"cytobands,omitempty"`
	Zoom      string  `json:"zoom,omitempty"`
	PlotType  int     `json:"plot_type,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Palette   string  `json:"palette,omitempty"`
	Format    string  `json:"format,omitempty"`
}

// handlePlot renders a plot and streams the artifact back.
func (s *server) handlePlot(w http.ResponseWriter, req *http.Request) {
	var pr plotRequest
	if err := json.NewDecoder(req.Body).Decode(&pr); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	format := pr.Format
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := pipeline.Options{
		Assembly:  pr.Assembly,
		Cytobands: pr.Cytobands,
		Zoom:      pr.Zoom,
		PlotType:  pr.PlotType,
		Width:     pr.Width,
		Height:    pr.Height,
		Palette:   pr.Palette,
		Formats:   []string{format},
		Logger:    s.logger,
	}

	result, err := s.runner.Execute(req.Context(), opts)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	w.Header().Set("X-Karyoplot-Cache", cacheStatus)
	w.Header().Set("X-Karyoplot-Hash", result.DataHash)
	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func contentType(format string) string {
	if format == pipeline.FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
