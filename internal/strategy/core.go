package strategy

import (
	"fmt"

	"github.com/Harshitk-cp/wolfmind/internal/belief"
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/Harshitk-cp/wolfmind/internal/selector"
	"go.uber.org/zap"
)

// core is the state every role shares: the latest snapshot, the belief store,
// the selector and the declared vote target.
type core struct {
	me      domain.Agent
	role    domain.Role
	info    *domain.GameInfo
	setting *domain.GameSetting
	beliefs *belief.Store
	sel     *selector.Selector
	logger  *zap.Logger

	voteCandidate domain.Agent
	// exclude is never targeted by talk or vote (fellow werewolves).
	exclude []domain.Agent
}

func newCore(info *domain.GameInfo, setting *domain.GameSetting, opts Options) *core {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.Stringer("me", info.Me), zap.String("role", string(info.Role)))

	return &core{
		me:      info.Me,
		role:    info.Role,
		info:    info,
		setting: setting,
		beliefs: belief.NewStore(info.Me, logger),
		sel:     selector.New(info.Me, info, opts.Rand),
		logger:  logger,
	}
}

func (c *core) Role() domain.Role      { return c.role }
func (c *core) Beliefs() *belief.Store { return c.beliefs }
func (c *core) day() int               { return c.info.Day }
func (c *core) executed() domain.Agent { return c.info.ExecutedAgent }
func (c *core) werewolfHeadcount() int { return c.setting.RoleCount(domain.RoleWerewolf) }
func (c *core) roster() []domain.Agent { return c.info.Agents }

func (c *core) Update(info *domain.GameInfo) {
	if info == nil {
		return
	}
	c.info = info
	c.sel.SetStatus(info)
	c.beliefs.Ingest(info.TalkList)
}

func (c *core) DayStart() {
	c.voteCandidate = domain.AgentNone
}

func (c *core) Vote() domain.Agent {
	if c.voteCandidate != domain.AgentNone {
		return c.voteCandidate
	}
	return c.me
}

func (c *core) Whisper() (domain.Statement, error) {
	return domain.Skip(), c.unsupported("whisper")
}

func (c *core) NightAction(action Action) (domain.Agent, error) {
	return domain.AgentNone, c.unsupported(string(action))
}

func (c *core) Finish() {
	snap := c.beliefs.Snapshot()
	c.logger.Info("game finished",
		zap.Int("day", c.day()),
		zap.Int("talks_ingested", snap.Cursor),
		zap.Int("claims", len(snap.Comingouts)))
}

func (c *core) unsupported(what string) error {
	c.logger.Error("unsupported action for role", zap.String("action", what))
	return fmt.Errorf("%s cannot %s: %w", c.role, what, ErrUnsupportedAction)
}

// eligible keeps living agents other than self and the excluded.
func (c *core) eligible(agents []domain.Agent) []domain.Agent {
	out := c.sel.AliveOthers(agents)
	if len(c.exclude) == 0 {
		return out
	}
	kept := out[:0]
	for _, a := range out {
		if !domain.Contains(c.exclude, a) {
			kept = append(kept, a)
		}
	}
	return kept
}

// declareVote resolves the fallback chain and announces the target if it changed.
func (c *core) declareVote(pools ...pool) domain.Statement {
	candidates := firstNonEmpty(pools...)
	if c.voteCandidate != domain.AgentNone && domain.Contains(candidates, c.voteCandidate) {
		return domain.Skip()
	}
	c.voteCandidate = c.sel.PickStable(c.voteCandidate, candidates)
	if c.voteCandidate == domain.AgentNone {
		return domain.Skip()
	}
	c.logger.Debug("declaring vote",
		zap.Int("day", c.day()),
		zap.Stringer("target", c.voteCandidate),
		zap.Int("pool_size", len(candidates)))
	return domain.VoteStatement(c.voteCandidate)
}

// villagerTalk is the plain chain used by roles without a public persona.
func (c *core) villagerTalk() domain.Statement {
	return c.declareVote(
		c.reportedWerewolves,
		c.declaredAgainstMe,
		c.requestedAgainstMe,
		c.votedAgainstMe,
		c.fakeSeers,
		c.anyone,
	)
}
