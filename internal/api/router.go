package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Harshitk-cp/wolfmind/internal/api/handlers"
	mw "github.com/Harshitk-cp/wolfmind/internal/api/middleware"
	"github.com/Harshitk-cp/wolfmind/internal/buildconfig"
	"github.com/Harshitk-cp/wolfmind/internal/config"
	"github.com/Harshitk-cp/wolfmind/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const limiterSweepInterval = 10 * time.Minute

// App holds the router and background services for lifecycle management.
type App struct {
	Router *chi.Mux
	Games  *service.GameService
	Reaper *service.Reaper

	limiter *mw.RateLimiter
	metrics *metrics
}

// Options configures NewApp. A zero RateLimitRPS disables rate limiting; zero
// durations fall back to config.
type Options struct {
	APIToken       string
	RateLimitRPS   float64
	RateLimitBurst int
	GameIdleTTL    time.Duration
	ReapInterval   time.Duration
}

func OptionsFromConfig() Options {
	return Options{
		APIToken:       config.APIToken(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
		GameIdleTTL:    config.GameIdleTTL(),
		ReapInterval:   config.GameReapInterval(),
	}
}

func NewApp(games *service.GameService, opts Options, logger *zap.Logger) *App {
	if opts.GameIdleTTL <= 0 {
		opts.GameIdleTTL = config.GameIdleTTL()
	}
	if opts.ReapInterval <= 0 {
		opts.ReapInterval = config.GameReapInterval()
	}
	reaper := service.NewReaper(games, opts.GameIdleTTL, logger)
	reaper.SetInterval(opts.ReapInterval)

	gameHandler := handlers.NewGameHandler(games)

	r := chi.NewRouter()
	app := &App{
		Router:  r,
		Games:   games,
		Reaper:  reaper,
		metrics: &metrics{start: time.Now()},
	}

	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	if opts.RateLimitRPS > 0 {
		app.limiter = mw.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
		app.limiter.StartSweeper(limiterSweepInterval, limiterSweepInterval)
		r.Use(app.limiter.Handler)
	}

	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())
	r.Get("/version", versionHandler)

	r.Route("/v1/games", func(r chi.Router) {
		r.Use(mw.BearerAuth(opts.APIToken))

		r.Post("/", gameHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(app.metrics.countTurn)
			r.Post("/update", gameHandler.Update)
			r.Post("/day-start", gameHandler.DayStart)
			r.Post("/talk", gameHandler.Talk)
			r.Post("/whisper", gameHandler.Whisper)
			r.Post("/vote", gameHandler.Vote)
			r.Post("/divine", gameHandler.Divine)
			r.Post("/guard", gameHandler.Guard)
			r.Post("/attack", gameHandler.Attack)
			r.Get("/beliefs", gameHandler.Beliefs)
			r.Delete("/", gameHandler.Finish)
		})
	})

	return app
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"games":  app.Games.Count(),
		})
	}
}

// Close stops the background work NewApp started. The reaper is started and
// stopped separately by the caller.
func (app *App) Close() {
	if app.limiter != nil {
		app.limiter.Stop()
	}
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildconfig.VersionInfo())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
