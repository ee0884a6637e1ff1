package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/brokenerd/healthcalc/internal/config"
	"github.com/brokenerd/healthcalc/internal/metrics"
	"github.com/brokenerd/healthcalc/pkg/health"
	"github.com/brokenerd/healthcalc/pkg/profile"
	"github.com/brokenerd/healthcalc/pkg/validation"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 1 << 20

// Server exposes the calculator over HTTP.
type Server struct {
	cfg    *config.Config
	policy health.TargetPolicy
}

// New creates a server for the given configuration.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg:    cfg,
		policy: cfg.TargetPolicy(),
	}
}

// Handler returns the routed handler with request IDs and metrics attached.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("GET /api/plans", s.handlePlans)
	mux.HandleFunc("GET /api/plans/{category}", s.handlePlan)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		mux.Handle("GET "+s.cfg.Metrics.Path, promhttp.Handler())
	}
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return withRequestID(mux)
}

// Start launches the HTTP server and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s.cfg.Metrics.Enabled {
		metrics.Register()
		health.PlanFallbackHook = func(health.Category) { metrics.IncPlanFallback() }
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("healthcalc server starting on http://localhost%s", srv.Addr)
		log.Printf("Target policy: -%d / +%d kcal", s.policy.DeficitKcal, s.policy.SurplusKcal)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("Server stopped")
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>healthcalc</title></head>
<body style="margin:0;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Indian Health &amp; Diet Calculator</h1>
<p>POST a profile to <code>/api/calculate</code>. Plans are at <code>/api/plans</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.cfg.App.Version,
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	p, ok := readProfile(w, r)
	if !ok {
		return
	}

	report := validation.ValidateProfile(p)
	if !report.Valid {
		for _, path := range report.Paths() {
			metrics.IncValidationFailure(path)
		}
		writeJSON(w, http.StatusBadRequest, report)
		return
	}

	in, err := p.Input()
	if err == nil {
		var res *health.Result
		res, err = health.Calculate(in, s.policy)
		if err == nil {
			metrics.IncCalculation(string(res.BMI.Category))
			metrics.ObserveBMI(res.BMI.BMI)
			writeJSON(w, http.StatusOK, res)
			return
		}
	}

	failed := validation.FromError(err)
	for _, path := range failed.Paths() {
		metrics.IncValidationFailure(path)
	}
	writeJSON(w, http.StatusBadRequest, failed)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	p, ok := readProfile(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateProfile(p))
}

func (s *Server) handlePlans(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, health.DietPlans())
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	c, err := health.ParseCategory(r.PathValue("category"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, health.LookupDietPlan(c))
}

func readProfile(w http.ResponseWriter, r *http.Request) (*profile.Profile, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": err.Error()})
		return nil, false
	}
	p, err := profile.Parse(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, false
	}
	return p, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// withRequestID tags every response with X-Request-ID, reusing the
// caller's ID when one is sent, and counts requests per route.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.IncHTTPRequest(route, strconv.Itoa(rec.status))
	})
}
