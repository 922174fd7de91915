package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zgpcy/clock-icon-animator/internal/collector"
	"github.com/zgpcy/clock-icon-animator/internal/config"
	"github.com/zgpcy/clock-icon-animator/internal/logger"
	"github.com/zgpcy/clock-icon-animator/internal/pager"
)

//go:embed templates/index.html
var indexTemplate string

// HTTP server timeout constants
const (
	DefaultReadTimeout  = 15 * time.Second // Maximum duration for reading the entire request
	DefaultWriteTimeout = 15 * time.Second // Maximum duration before timing out writes of the response
	DefaultIdleTimeout  = 60 * time.Second // Maximum amount of time to wait for the next request
)

// indexPageData holds template data for the index page
type indexPageData struct {
	StatusClass string
	StatusText  string
	LastTick    string
	Interval    string
	Animated    int
	Static      []collector.StaticIcon
	Page        iconPage
	PrevPage    int
	NextPage    int
}

// iconPage is one page of the animated icon listing
type iconPage struct {
	Page      int                      `json:"page"`
	Pages     int                      `json:"pages"`
	PageSize  int                      `json:"page_size"`
	Total     int                      `json:"total"`
	Indicator string                   `json:"indicator"`
	Icons     []collector.IconSnapshot `json:"icons"`
}

// Server represents the HTTP server
type Server struct {
	server    *http.Server
	collector *collector.ClockCollector
	cfg       *config.Config
	logger    *logger.Logger
	index     *template.Template
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, collector *collector.ClockCollector, log *logger.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:      mux,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
		collector: collector,
		cfg:       cfg,
		logger:    log,
		index:     template.Must(template.New("index").Parse(indexTemplate)),
	}

	// Register handlers
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.HandleFunc("/api/icons", s.handleIcons)
	mux.HandleFunc("/api/icons/", s.handleIcon)
	mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "address", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// handleIndex serves the status page with one page of icons
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, err := pageParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	statusClass := "not-ready"
	statusText := "Not Ready"
	if s.collector.IsReady() {
		statusClass = "ready"
		statusText = "Ready"
	}

	lastTick := s.collector.LastTick()
	lastTickText := "Never"
	if !lastTick.IsZero() {
		lastTickText = lastTick.Format("2006-01-02 15:04:05 MST")
	}

	listing := s.iconPage(page)
	data := indexPageData{
		StatusClass: statusClass,
		StatusText:  statusText,
		LastTick:    lastTickText,
		Interval:    s.collector.Interval().String(),
		Animated:    listing.Total,
		Static:      s.collector.Static(),
		Page:        listing,
		PrevPage:    listing.Page - 1,
		NextPage:    listing.Page + 1,
	}

	w.Header().Set("Content-Type", "text/html")
	if err := s.index.Execute(w, data); err != nil {
		s.logger.Error("Failed to execute index template", "error", err)
	}
}

// handleHealth handles health check requests (always returns 200 for liveness)
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
		s.logger.Error("Failed to write health response", "error", err)
	}
}

// handleReady handles readiness check requests (returns 200 once the first tick completed)
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !s.collector.IsReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		if _, err := w.Write([]byte(`{"status":"not ready","message":"waiting for first tick"}`)); err != nil {
			s.logger.Error("Failed to write ready response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ready"}`)); err != nil {
		s.logger.Error("Failed to write ready response", "error", err)
	}
}

// handleIcons serves one page of animated icons as JSON
func (s *Server) handleIcons(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, s.iconPage(page))
}

// handleIcon serves the state of a single icon by package name
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	pkg := strings.TrimPrefix(r.URL.Path, "/api/icons/")
	if pkg == "" {
		s.handleIcons(w, r)
		return
	}

	if snap, ok := s.collector.Icon(pkg); ok {
		s.writeJSON(w, http.StatusOK, snap)
		return
	}
	for _, st := range s.collector.Static() {
		if st.Package == pkg {
			s.writeJSON(w, http.StatusOK, st)
			return
		}
	}
	s.writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("icon %q not found", pkg)})
}

// iconPage slices the icon list with a pager positioned on the requested
// page. Out-of-range pages clamp to the nearest valid one.
func (s *Server) iconPage(page int) iconPage {
	icons := s.collector.Snapshot()
	size := s.cfg.PageSize
	if size <= 0 {
		size = config.DefaultPageSize
	}

	p := pager.New(pager.PageCount(len(icons), size))
	dots := pager.NewDots()
	dots.SetPagerAt(p, page)

	lo, hi := pager.PageBounds(p.CurrentItem(), size, len(icons))
	return iconPage{
		Page:      p.CurrentItem(),
		Pages:     p.Count(),
		PageSize:  size,
		Total:     len(icons),
		Indicator: dots.String(),
		Icons:     icons[lo:hi],
	}
}

func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid page %q", raw)
	}
	return page, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write JSON response", "error", err)
	}
}
