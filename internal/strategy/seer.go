package strategy

import (
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// Seer divines one agent per night and reports its results after revealing.
type Seer struct {
	*core
	co         comingout
	queue      deque.Deque[domain.Judgement]
	seen       map[domain.Judgement]bool
	notDivined []domain.Agent
	werewolves []domain.Agent
}

func newSeer(c *core, comingoutDay int) *Seer {
	return &Seer{
		core:       c,
		co:         comingout{day: comingoutDay},
		seen:       make(map[domain.Judgement]bool),
		notDivined: c.sel.Others(c.roster()),
	}
}

func (s *Seer) DayStart() {
	s.core.DayStart()

	j := s.info.DivineResult
	if j == nil || j.IsEmpty() || s.seen[*j] {
		return
	}
	s.seen[*j] = true
	s.queue.PushBack(*j)
	s.notDivined = remove(s.notDivined, j.Target)
	if j.Result == domain.SpeciesWerewolf {
		s.werewolves = append(s.werewolves, j.Target)
	}
	s.logger.Debug("divine result received",
		zap.Stringer("target", j.Target),
		zap.String("result", string(j.Result)))
}

func (s *Seer) Talk() domain.Statement {
	if s.co.due(s.day(), len(s.werewolves) > 0) {
		s.co.reveal()
		s.logger.Info("coming out", zap.Int("day", s.day()))
		return domain.ComingoutStatement(s.me, domain.RoleSeer)
	}
	if s.co.revealed && s.queue.Len() > 0 {
		j := s.queue.PopFront()
		return domain.DivinedStatement(j.Target, j.Result)
	}
	return s.declareVote(
		s.among(&s.werewolves),
		s.claimantsOf(domain.RoleSeer),
		s.reportedWerewolves,
		s.declaredAgainstMe,
		s.requestedAgainstMe,
		s.votedAgainstMe,
		s.fakeSeers,
		s.anyone,
	)
}

func (s *Seer) NightAction(action Action) (domain.Agent, error) {
	if action != ActionDivine {
		return s.core.NightAction(action)
	}
	target := s.sel.Pick(s.sel.AliveOthers(s.notDivined))
	if target == domain.AgentNone {
		target = s.me
	}
	s.logger.Debug("divining", zap.Int("day", s.day()), zap.Stringer("target", target))
	return target, nil
}

// Revealed reports whether the seer has come out.
func (s *Seer) Revealed() bool {
	return s.co.revealed
}

func remove(agents []domain.Agent, a domain.Agent) []domain.Agent {
	out := agents[:0]
	for _, x := range agents {
		if x != a {
			out = append(out, x)
		}
	}
	return out
}
