// Package scserver exposes layout and rendering over HTTP. The API is
// stateless: every request carries the full graph, and identical
// requests produce identical responses.
package scserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cdr.dev/slog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/scrawl-labs/scrawl/lib/geo"
	"github.com/scrawl-labs/scrawl/lib/log"
	"github.com/scrawl-labs/scrawl/scgraph"
	"github.com/scrawl-labs/scrawl/sclayouts"
	"github.com/scrawl-labs/scrawl/screnderers/scsvg"
	"github.com/scrawl-labs/scrawl/sctarget"
	"github.com/scrawl-labs/scrawl/scthemes"
)

const (
	DEFAULT_WIDTH  = 1400.0
	DEFAULT_HEIGHT = 900.0

	// request bodies beyond this are rejected before decoding
	MAX_BODY_BYTES = 4 << 20
)

type Server struct {
	router  chi.Router
	metrics *Metrics
}

func New() *Server {
	s := &Server{
		router:  chi.NewRouter(),
		metrics: NewMetrics(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(s.instrument)

	s.router.Post("/api/layout", s.handleLayout)
	s.router.Post("/api/render", s.handleRender)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		s.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
		s.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

		log.Debug(r.Context(), "request",
			slog.F("method", r.Method),
			slog.F("route", route),
			slog.F("status", ww.Status()),
			slog.F("duration", time.Since(start)),
		)
	})
}

// diagramRequest is the body shared by the layout and render routes.
type diagramRequest struct {
	Graph  *scgraph.Graph `json:"graph"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Mode   string         `json:"mode"`
	Theme  string         `json:"theme"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*diagramRequest, sclayouts.Mode, bool) {
	var req diagramRequest
	body := http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		httpError(w, r, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return nil, "", false
	}
	if req.Graph == nil {
		httpError(w, r, http.StatusBadRequest, fmt.Errorf("missing graph"))
		return nil, "", false
	}
	if err := req.Graph.Check(); err != nil {
		httpError(w, r, http.StatusBadRequest, fmt.Errorf("invalid graph: %w", err))
		return nil, "", false
	}

	mode, err := sclayouts.ParseMode(req.Mode)
	if err != nil {
		httpError(w, r, http.StatusBadRequest, err)
		return nil, "", false
	}

	if req.Width == 0 {
		req.Width = DEFAULT_WIDTH
	}
	if req.Height == 0 {
		req.Height = DEFAULT_HEIGHT
	}
	if req.Width < 0 || req.Height < 0 {
		httpError(w, r, http.StatusBadRequest, fmt.Errorf("canvas dimensions must be positive"))
		return nil, "", false
	}

	return &req, mode, true
}

type position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type layoutResponse struct {
	Mode      string              `json:"mode"`
	Positions map[string]position `json:"positions"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, mode, ok := s.decode(w, r)
	if !ok {
		return
	}

	boxes := sclayouts.Layout(r.Context(), req.Graph, req.Width, req.Height, mode)
	s.metrics.LayoutsTotal.WithLabelValues(string(mode)).Inc()

	resp := layoutResponse{Mode: string(mode), Positions: map[string]position{}}
	for id, box := range boxes {
		resp.Positions[id] = positionOf(box)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, mode, ok := s.decode(w, r)
	if !ok {
		return
	}

	theme, err := scthemes.Find(req.Theme)
	if err != nil {
		httpError(w, r, http.StatusBadRequest, err)
		return
	}

	d := sctarget.Compute(r.Context(), req.Graph, req.Width, req.Height, mode)
	s.metrics.LayoutsTotal.WithLabelValues(string(mode)).Inc()

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := scsvg.Render(w, d, theme); err != nil {
		log.Error(r.Context(), "render failed", slog.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func positionOf(box *geo.Box) position {
	return position{
		X:      box.TopLeft.X,
		Y:      box.TopLeft.Y,
		Width:  box.Width,
		Height: box.Height,
	}
}

func httpError(w http.ResponseWriter, r *http.Request, code int, err error) {
	log.Debug(r.Context(), "request rejected", slog.F("code", code), slog.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
