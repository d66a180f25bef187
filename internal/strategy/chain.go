package strategy

import "github.com/Harshitk-cp/wolfmind/internal/domain"

// pool lazily produces one tier of vote candidates.
type pool func() []domain.Agent

// firstNonEmpty evaluates pools in order and returns the first non-empty one.
// Pools are never merged.
func firstNonEmpty(pools ...pool) []domain.Agent {
	for _, p := range pools {
		if candidates := p(); len(candidates) > 0 {
			return candidates
		}
	}
	return nil
}

// reportedWerewolves: agents divined as werewolves by seers that never accused self.
func (c *core) reportedWerewolves() []domain.Agent {
	return c.eligible(c.beliefs.ReportedWerewolves())
}

// declaredAgainstMe: agents that said today they will vote for self.
func (c *core) declaredAgainstMe() []domain.Agent {
	return c.eligible(c.beliefs.DeclaredVoters(c.me, c.day()))
}

// requestedAgainstMe: agents that asked others today to vote for self.
func (c *core) requestedAgainstMe() []domain.Agent {
	return c.eligible(c.beliefs.Requesters(c.me, c.day()))
}

// votedAgainstMe: agents that reported today having voted for self last round.
func (c *core) votedAgainstMe() []domain.Agent {
	return c.eligible(c.beliefs.ReportedVoters(c.me, c.day()))
}

// fakeSeers: agents that divined self as a werewolf.
func (c *core) fakeSeers() []domain.Agent {
	return c.eligible(c.beliefs.Accusers(c.me))
}

func (c *core) claimantsOf(role domain.Role) pool {
	return func() []domain.Agent {
		return c.eligible(c.beliefs.Claimants(role))
	}
}

func (c *core) among(agents *[]domain.Agent) pool {
	return func() []domain.Agent {
		return c.eligible(*agents)
	}
}

func (c *core) anyone() []domain.Agent {
	return c.eligible(c.roster())
}
