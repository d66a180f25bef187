package strategy

import (
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// Possessed is human but sides with the werewolves. It impersonates an
// investigator and reports fabricated judgements.
type Possessed struct {
	*core
	persona    domain.Role
	co         comingout
	queue      deque.Deque[domain.Judgement]
	notJudged  []domain.Agent
	numWolves  int
	werewolves []domain.Agent
	fakeProb   float64
	// fakedDay is the last day a fake judgement was generated.
	fakedDay int
}

func newPossessed(c *core, opts Options) *Possessed {
	p := &Possessed{
		core:      c,
		co:        comingout{day: opts.PossessedComingoutDay},
		notJudged: c.sel.Others(c.roster()),
		numWolves: c.werewolfHeadcount(),
		fakeProb:  opts.FakeWerewolfProbability,
		fakedDay:  -1,
	}
	switch opts.PossessedPersona {
	case PersonaMedium:
		p.persona = domain.RoleMedium
	case PersonaRandom:
		p.persona = domain.RoleSeer
		if c.sel.Float64() < 0.5 {
			p.persona = domain.RoleMedium
		}
	default:
		p.persona = domain.RoleSeer
	}
	c.logger.Debug("possessed persona chosen", zap.String("persona", string(p.persona)))
	return p
}

// Persona returns the investigator role being impersonated.
func (p *Possessed) Persona() domain.Role {
	return p.persona
}

// FakeWerewolves returns the agents falsely judged as werewolves so far.
func (p *Possessed) FakeWerewolves() []domain.Agent {
	return append([]domain.Agent(nil), p.werewolves...)
}

func (p *Possessed) DayStart() {
	p.core.DayStart()
	if p.fakedDay == p.day() {
		return
	}
	p.fakedDay = p.day()

	j := p.fakeJudgement()
	if j.IsEmpty() {
		return
	}
	p.queue.PushBack(j)
	p.notJudged = remove(p.notJudged, j.Target)
	if j.Result == domain.SpeciesWerewolf {
		p.werewolves = append(p.werewolves, j.Target)
	}
	p.logger.Debug("fake judgement generated",
		zap.Stringer("target", j.Target),
		zap.String("result", string(j.Result)))
}

func (p *Possessed) fakeJudgement() domain.Judgement {
	target := domain.AgentNone
	switch p.persona {
	case domain.RoleSeer:
		if p.day() != 0 {
			target = p.sel.Pick(p.sel.Alive(p.notJudged))
		}
	case domain.RoleMedium:
		if ex := p.executed(); ex != domain.AgentNone && domain.Contains(p.notJudged, ex) {
			target = ex
		}
	}
	if target == domain.AgentNone {
		return domain.JudgementEmpty
	}

	// Call a werewolf half of the time until as many have been named as exist.
	result := domain.SpeciesHuman
	if len(p.werewolves) < p.numWolves && p.sel.Float64() < p.fakeProb {
		result = domain.SpeciesWerewolf
	}
	return domain.Judgement{Agent: p.me, Day: p.day(), Target: target, Result: result}
}

func (p *Possessed) Talk() domain.Statement {
	if p.co.due(p.day(), len(p.werewolves) > 0) {
		p.co.reveal()
		p.logger.Info("coming out", zap.Int("day", p.day()), zap.String("persona", string(p.persona)))
		return domain.ComingoutStatement(p.me, p.persona)
	}
	if p.co.revealed && p.queue.Len() > 0 {
		j := p.queue.PopFront()
		if p.persona == domain.RoleMedium {
			return domain.IdentifiedStatement(j.Target, j.Result)
		}
		return domain.DivinedStatement(j.Target, j.Result)
	}
	return p.declareVote(
		p.declaredAgainstMe,
		p.requestedAgainstMe,
		p.votedAgainstMe,
		p.claimantsOf(p.persona),
		p.among(&p.werewolves),
		p.anyone,
	)
}
