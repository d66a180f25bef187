package api

import (
	"net/http"
	"runtime"
	"sync/atomic"
	"time"
)

// metrics is the process-wide request accounting served by /metrics.
type metrics struct {
	start    time.Time
	requests atomic.Int64
	errors   atomic.Int64
	inFlight atomic.Int64
	// turns counts game callbacks under /v1/games, excluding creation.
	turns atomic.Int64
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requests.Add(1)
		m.inFlight.Add(1)
		defer m.inFlight.Add(-1)

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)

		if sr.status >= 400 {
			m.errors.Add(1)
		}
	})
}

func (m *metrics) countTurn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.turns.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.metrics.start)

		writeJSON(w, http.StatusOK, map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.metrics.requests.Load(),
			"error_count":    app.metrics.errors.Load(),
			"in_flight":      app.metrics.inFlight.Load(),
			"game_turns":     app.metrics.turns.Load(),
			"active_games":   app.Games.Count(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		})
	}
}
