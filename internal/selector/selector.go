// Package selector filters agent lists and makes sticky random picks.
package selector

import (
	"math/rand/v2"

	"github.com/Harshitk-cp/wolfmind/internal/domain"
)

// Selector is stateless apart from its random source and the status lookup it
// consults; the lookup is the latest game snapshot.
type Selector struct {
	me     domain.Agent
	status domain.StatusLookup
	rng    *rand.Rand
}

// New returns a Selector. A nil rng falls back to a randomly seeded source.
func New(me domain.Agent, status domain.StatusLookup, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{me: me, status: status, rng: rng}
}

// SetStatus swaps in a newer snapshot.
func (s *Selector) SetStatus(status domain.StatusLookup) {
	s.status = status
}

func (s *Selector) Me() domain.Agent {
	return s.me
}

func (s *Selector) IsAlive(a domain.Agent) bool {
	return s.status != nil && s.status.IsAlive(a)
}

// Others drops self from agents.
func (s *Selector) Others(agents []domain.Agent) []domain.Agent {
	out := make([]domain.Agent, 0, len(agents))
	for _, a := range agents {
		if a != s.me {
			out = append(out, a)
		}
	}
	return out
}

// Alive keeps only living agents.
func (s *Selector) Alive(agents []domain.Agent) []domain.Agent {
	out := make([]domain.Agent, 0, len(agents))
	for _, a := range agents {
		if s.IsAlive(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Selector) AliveOthers(agents []domain.Agent) []domain.Agent {
	return s.Alive(s.Others(agents))
}

// Pick returns a uniformly random member of candidates, or AgentNone.
func (s *Selector) Pick(candidates []domain.Agent) domain.Agent {
	if len(candidates) == 0 {
		return domain.AgentNone
	}
	return candidates[s.rng.IntN(len(candidates))]
}

// PickStable keeps prev while it is still a candidate and re-rolls otherwise.
func (s *Selector) PickStable(prev domain.Agent, candidates []domain.Agent) domain.Agent {
	if prev != domain.AgentNone && domain.Contains(candidates, prev) {
		return prev
	}
	return s.Pick(candidates)
}

// Float64 exposes the random source for probabilistic decisions.
func (s *Selector) Float64() float64 {
	return s.rng.Float64()
}
