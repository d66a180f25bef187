package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Harshitk-cp/wolfmind/internal/belief"
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/Harshitk-cp/wolfmind/internal/player"
	"github.com/Harshitk-cp/wolfmind/internal/strategy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidGame  = errors.New("invalid game snapshot")
)

type session struct {
	mu       sync.Mutex
	game     *player.Game
	lastSeen time.Time
}

// GameService hosts concurrent games. Turns of a single game are serialized by
// the session lock.
type GameService struct {
	opts   strategy.Options
	logger *zap.Logger
	now    func() time.Time

	mu    sync.RWMutex
	games map[uuid.UUID]*session
}

// NewGameService returns a registry. opts.Rand must be nil: every game seeds its
// own source.
func NewGameService(opts strategy.Options, logger *zap.Logger) *GameService {
	opts.Rand = nil
	return &GameService{
		opts:   opts,
		logger: logger,
		now:    time.Now,
		games:  make(map[uuid.UUID]*session),
	}
}

func (s *GameService) Create(info *domain.GameInfo, setting *domain.GameSetting) (uuid.UUID, domain.Role, error) {
	id := uuid.New()
	opts := s.opts
	opts.Logger = s.logger.With(zap.String("game_id", id.String()))

	g, err := player.NewGame(info, setting, opts)
	if err != nil {
		if errors.Is(err, strategy.ErrUnknownRole) || errors.Is(err, strategy.ErrInvalidSnapshot) {
			return uuid.Nil, "", fmt.Errorf("%w: %v", ErrInvalidGame, err)
		}
		return uuid.Nil, "", err
	}

	s.mu.Lock()
	s.games[id] = &session{game: g, lastSeen: s.now()}
	s.mu.Unlock()
	return id, g.Role(), nil
}

func (s *GameService) Update(id uuid.UUID, info *domain.GameInfo) error {
	return s.with(id, func(g *player.Game) error {
		g.Update(info)
		return nil
	})
}

func (s *GameService) DayStart(id uuid.UUID, info *domain.GameInfo) error {
	return s.with(id, func(g *player.Game) error {
		g.DayStart(info)
		return nil
	})
}

// Talk optionally ingests info first, then returns the next statement.
func (s *GameService) Talk(id uuid.UUID, info *domain.GameInfo) (domain.Statement, error) {
	var st domain.Statement
	err := s.with(id, func(g *player.Game) error {
		refresh(g, info)
		st = g.Talk()
		return nil
	})
	return st, err
}

func (s *GameService) Whisper(id uuid.UUID, info *domain.GameInfo) (domain.Statement, error) {
	var st domain.Statement
	err := s.with(id, func(g *player.Game) error {
		refresh(g, info)
		var err error
		st, err = g.Whisper()
		return err
	})
	return st, err
}

func (s *GameService) Vote(id uuid.UUID, info *domain.GameInfo) (domain.Agent, error) {
	var target domain.Agent
	err := s.with(id, func(g *player.Game) error {
		refresh(g, info)
		target = g.Vote()
		return nil
	})
	return target, err
}

func (s *GameService) NightAction(id uuid.UUID, info *domain.GameInfo, action strategy.Action) (domain.Agent, error) {
	var target domain.Agent
	err := s.with(id, func(g *player.Game) error {
		refresh(g, info)
		var err error
		switch action {
		case strategy.ActionDivine:
			target, err = g.Divine()
		case strategy.ActionGuard:
			target, err = g.Guard()
		case strategy.ActionAttack:
			target, err = g.Attack()
		default:
			err = fmt.Errorf("%w: %q", strategy.ErrUnsupportedAction, action)
		}
		return err
	})
	return target, err
}

func (s *GameService) Beliefs(id uuid.UUID) (belief.Snapshot, error) {
	var snap belief.Snapshot
	err := s.with(id, func(g *player.Game) error {
		snap = g.Beliefs()
		return nil
	})
	return snap, err
}

// Finish ends the game and forgets it.
func (s *GameService) Finish(id uuid.UUID) error {
	sess, ok := s.remove(id)
	if !ok {
		return ErrGameNotFound
	}
	sess.mu.Lock()
	sess.game.Finish()
	sess.mu.Unlock()
	return nil
}

// Count returns the number of live games.
func (s *GameService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// ReapIdle finishes every game untouched for longer than ttl.
func (s *GameService) ReapIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.RLock()
	var idle []uuid.UUID
	for id, sess := range s.games {
		sess.mu.Lock()
		if sess.lastSeen.Before(cutoff) {
			idle = append(idle, id)
		}
		sess.mu.Unlock()
	}
	s.mu.RUnlock()

	reaped := 0
	for _, id := range idle {
		if err := s.Finish(id); err == nil {
			reaped++
			s.logger.Info("idle game reaped", zap.String("game_id", id.String()))
		}
	}
	return reaped
}

func (s *GameService) with(id uuid.UUID, fn func(*player.Game) error) error {
	s.mu.RLock()
	sess, ok := s.games[id]
	s.mu.RUnlock()
	if !ok {
		return ErrGameNotFound
	}

	sess.mu.Lock()
	sess.lastSeen = s.now()
	err := fn(sess.game)
	sess.mu.Unlock()

	if errors.Is(err, strategy.ErrUnsupportedAction) {
		s.logger.Error("role mismatch, dropping game",
			zap.String("game_id", id.String()),
			zap.String("role", string(sess.game.Role())),
			zap.Error(err))
		_ = s.Finish(id)
	}
	return err
}

func (s *GameService) remove(id uuid.UUID) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.games[id]
	if ok {
		delete(s.games, id)
	}
	return sess, ok
}

func refresh(g *player.Game, info *domain.GameInfo) {
	if info != nil {
		g.Update(info)
	}
}
