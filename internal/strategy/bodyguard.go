package strategy

import (
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"go.uber.org/zap"
)

// Bodyguard protects claimed investigators and otherwise talks like a villager.
type Bodyguard struct {
	*core
	guardTarget domain.Agent
}

func newBodyguard(c *core) *Bodyguard {
	return &Bodyguard{core: c}
}

func (b *Bodyguard) Talk() domain.Statement {
	return b.villagerTalk()
}

func (b *Bodyguard) NightAction(action Action) (domain.Agent, error) {
	if action != ActionGuard {
		return b.core.NightAction(action)
	}
	candidates := firstNonEmpty(b.trustedSeers, b.claimantsOf(domain.RoleMedium), b.anyone)
	b.guardTarget = b.sel.PickStable(b.guardTarget, candidates)

	target := b.guardTarget
	if target == domain.AgentNone {
		target = b.me
	}
	b.logger.Debug("guarding", zap.Int("day", b.day()), zap.Stringer("target", target))
	return target, nil
}

// trustedSeers: seer claimants and diviners that never reported self as a werewolf.
func (b *Bodyguard) trustedSeers() []domain.Agent {
	accusers := b.beliefs.Accusers(b.me)
	var seers []domain.Agent
	for _, a := range append(b.beliefs.Claimants(domain.RoleSeer), b.beliefs.Diviners()...) {
		if !domain.Contains(accusers, a) && !domain.Contains(seers, a) {
			seers = append(seers, a)
		}
	}
	return b.eligible(seers)
}
