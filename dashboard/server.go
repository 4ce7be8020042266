package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/diorama-viz/diorama/logger"
	"github.com/diorama-viz/diorama/metrics"
	"github.com/diorama-viz/diorama/query"
	"github.com/diorama-viz/diorama/tracer"
	"github.com/diorama-viz/diorama/viz"
)

// Server is the dashboard HTTP server.
type Server struct {
	HTTP *http.Server

	cfg     Config
	builder FigureBuilder
	log     *logger.Logger
	metrics *metrics.Metrics
	tracer  *tracer.Tracer
}

// NewServer assembles the server and its routes.
func NewServer(cfg Config, builder FigureBuilder, log *logger.Logger, m *metrics.Metrics, tr *tracer.Tracer) *Server {
	s := &Server{
		cfg:     cfg,
		builder: builder,
		log:     log,
		metrics: m,
		tracer:  tr,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/api/figure", s.handleFigure)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.HTTP = &http.Server{
		Addr:         cfg.Address,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	start := time.Now()
	ctx := s.tracer.SetCarrierOnContext(r.Context(), traceCarrier(r.Header))
	ctx, span := s.tracer.StartSpan(ctx, "dashboard.page")
	defer span.End()

	fig, status, err := s.buildFromRequest(ctx, r)
	if err != nil {
		s.fail(w, r, span, status, err)
		s.observe(start, "/", status)
		return
	}
	s.recordFigure(start, span, fig)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viz.WriteHTML(w, fig); err != nil {
		s.log.ErrorWithContext(ctx, "failed to render figure page", err, nil)
	}
	s.observe(start, "/", http.StatusOK)
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := s.tracer.SetCarrierOnContext(r.Context(), traceCarrier(r.Header))
	ctx, span := s.tracer.StartSpan(ctx, "dashboard.figure")
	defer span.End()

	fig, status, err := s.buildFromRequest(ctx, r)
	if err != nil {
		s.fail(w, r, span, status, err)
		s.observe(start, "/api/figure", status)
		return
	}
	s.recordFigure(start, span, fig)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(fig); err != nil {
		s.log.ErrorWithContext(ctx, "failed to encode figure", err, nil)
	}
	s.observe(start, "/api/figure", http.StatusOK)
}

// buildFromRequest parses the common query parameters and asks the builder
// for a figure. The returned status is the HTTP status to use on error.
func (s *Server) buildFromRequest(ctx context.Context, r *http.Request) (*viz.Figure, int, error) {
	req := FigureRequest{Components: s.cfg.DefaultComponents}

	if raw := r.URL.Query().Get("filter"); raw != "" {
		filter := map[string]any{}
		if err := json.Unmarshal([]byte(raw), &filter); err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("invalid filter JSON: %w", err)
		}
		req.Filter = filter
	}

	if raw := r.URL.Query().Get("color_by"); raw != "" {
		for _, path := range strings.Split(raw, ",") {
			if path = strings.TrimSpace(path); path != "" {
				req.ColorBy = append(req.ColorBy, path)
			}
		}
	}

	if raw := r.URL.Query().Get("components"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || (n != 2 && n != 3) {
			return nil, http.StatusBadRequest, fmt.Errorf("components must be 2 or 3, got %q", raw)
		}
		req.Components = n
	}

	fig, err := s.builder.BuildFigure(ctx, req)
	if err != nil {
		if errors.Is(err, query.ErrUnknownOperator) || errors.Is(err, query.ErrMalformedOperand) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}
	return fig, http.StatusOK, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, span trace.Span, status int, err error) {
	s.tracer.RecordErrorOnSpan(span, err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorWithContext(r.Context(), "figure request failed", err, map[string]interface{}{
			"path": r.URL.Path,
		})
	} else {
		s.log.WarnWithContext(r.Context(), "rejected figure request", err, map[string]interface{}{
			"path": r.URL.Path,
		})
	}
	http.Error(w, err.Error(), status)
}

func (s *Server) observe(start time.Time, endpoint string, status int) {
	s.metrics.IncrementRequests(strconv.Itoa(status))
	s.metrics.RecordRequestDuration(start, endpoint)
}

// recordFigure annotates the span and the build histograms with the size
// of a successfully assembled figure.
func (s *Server) recordFigure(start time.Time, span trace.Span, fig *viz.Figure) {
	points := 0
	for _, tr := range fig.Data {
		points += len(tr.X)
	}
	s.tracer.SetAttributes(span, map[string]interface{}{
		"figure.traces": len(fig.Data),
		"figure.points": points,
	})
	s.metrics.RecordFigureBuild(start, points)
}

// traceCarrier pulls the W3C trace headers off an incoming request so the
// dashboard spans join the caller's trace.
func traceCarrier(h http.Header) map[string]string {
	carrier := map[string]string{}
	for _, key := range []string{"traceparent", "tracestate", "baggage"} {
		if v := h.Get(key); v != "" {
			carrier[key] = v
		}
	}
	return carrier
}
