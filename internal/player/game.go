// Package player binds one role strategy to a game and forwards the framework's
// callbacks to it.
package player

import (
	"fmt"

	"github.com/Harshitk-cp/wolfmind/internal/belief"
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/Harshitk-cp/wolfmind/internal/strategy"
	"go.uber.org/zap"
)

// Game is the per-game context. The strategy is chosen once from the role in the
// initial snapshot and never replaced.
type Game struct {
	strategy strategy.Strategy
	logger   *zap.Logger
	finished bool
}

func NewGame(info *domain.GameInfo, setting *domain.GameSetting, opts strategy.Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s, err := strategy.New(info, setting, opts)
	if err != nil {
		return nil, fmt.Errorf("bind strategy: %w", err)
	}
	opts.Logger.Info("game initialized",
		zap.Stringer("me", info.Me),
		zap.String("role", string(info.Role)),
		zap.Int("players", len(info.Agents)))
	return &Game{strategy: s, logger: opts.Logger}, nil
}

func (g *Game) Role() domain.Role {
	return g.strategy.Role()
}

func (g *Game) Beliefs() belief.Snapshot {
	return g.strategy.Beliefs().Snapshot()
}

func (g *Game) Finished() bool {
	return g.finished
}

// Update ingests a snapshot without any other side effect.
func (g *Game) Update(info *domain.GameInfo) {
	g.strategy.Update(info)
}

// DayStart ingests the morning snapshot and resets per-day state.
func (g *Game) DayStart(info *domain.GameInfo) {
	g.strategy.Update(info)
	g.strategy.DayStart()
}

func (g *Game) Talk() domain.Statement {
	return g.strategy.Talk()
}

func (g *Game) Whisper() (domain.Statement, error) {
	return g.strategy.Whisper()
}

func (g *Game) Vote() domain.Agent {
	return g.strategy.Vote()
}

func (g *Game) Divine() (domain.Agent, error) {
	return g.strategy.NightAction(strategy.ActionDivine)
}

func (g *Game) Guard() (domain.Agent, error) {
	return g.strategy.NightAction(strategy.ActionGuard)
}

func (g *Game) Attack() (domain.Agent, error) {
	return g.strategy.NightAction(strategy.ActionAttack)
}

// Finish ends the game. Later calls are no-ops.
func (g *Game) Finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.strategy.Finish()
}
