package strategy

import (
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// Medium learns the species of each executed agent and reports it after revealing.
type Medium struct {
	*core
	co        comingout
	queue     deque.Deque[domain.Judgement]
	seen      map[domain.Judgement]bool
	foundWolf bool
}

func newMedium(c *core, comingoutDay int) *Medium {
	return &Medium{
		core: c,
		co:   comingout{day: comingoutDay},
		seen: make(map[domain.Judgement]bool),
	}
}

func (m *Medium) DayStart() {
	m.core.DayStart()

	j := m.info.MediumResult
	if j == nil || j.IsEmpty() || m.seen[*j] {
		return
	}
	m.seen[*j] = true
	m.queue.PushBack(*j)
	if j.Result == domain.SpeciesWerewolf {
		m.foundWolf = true
	}
	m.logger.Debug("identification received",
		zap.Stringer("target", j.Target),
		zap.String("result", string(j.Result)))
}

func (m *Medium) Talk() domain.Statement {
	if m.co.due(m.day(), m.foundWolf) {
		m.co.reveal()
		m.logger.Info("coming out", zap.Int("day", m.day()))
		return domain.ComingoutStatement(m.me, domain.RoleMedium)
	}
	if m.co.revealed && m.queue.Len() > 0 {
		j := m.queue.PopFront()
		return domain.IdentifiedStatement(j.Target, j.Result)
	}
	return m.declareVote(
		m.claimantsOf(domain.RoleMedium),
		m.votedAgainstMe,
		m.declaredAgainstMe,
		m.requestedAgainstMe,
		m.reportedWerewolves,
		m.fakeSeers,
		m.anyone,
	)
}

// Pending returns how many identifications are waiting to be reported.
func (m *Medium) Pending() int {
	return m.queue.Len()
}

func (m *Medium) Revealed() bool {
	return m.co.revealed
}
