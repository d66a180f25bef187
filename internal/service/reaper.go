package service

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultReapInterval = 1 * time.Minute

// Reaper periodically finishes games that the framework abandoned.
type Reaper struct {
	games  *GameService
	ttl    time.Duration
	logger *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewReaper(games *GameService, ttl time.Duration, logger *zap.Logger) *Reaper {
	return &Reaper{
		games:    games,
		ttl:      ttl,
		logger:   logger,
		interval: defaultReapInterval,
		stopCh:   make(chan struct{}),
	}
}

func (r *Reaper) SetInterval(d time.Duration) {
	r.interval = d
}

// Start runs the reaper on a periodic schedule in a background goroutine.
func (r *Reaper) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		r.logger.Info("game reaper started",
			zap.Duration("interval", r.interval),
			zap.Duration("ttl", r.ttl))

		for {
			select {
			case <-ticker.C:
				r.run()
			case <-r.stopCh:
				r.logger.Info("game reaper stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the reaper.
func (r *Reaper) Stop() {
	close(r.stopCh)
	r.wg.Wait()
}

func (r *Reaper) run() {
	if n := r.games.ReapIdle(r.ttl); n > 0 {
		r.logger.Info("reaped idle games", zap.Int("count", n), zap.Int("remaining", r.games.Count()))
	}
}
