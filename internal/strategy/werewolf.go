package strategy

import (
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"go.uber.org/zap"
)

// Werewolf passes as a villager in public and leaves team coordination to the
// framework's whisper channel.
type Werewolf struct {
	*core
	attackTarget domain.Agent
}

func newWerewolf(c *core) *Werewolf {
	w := &Werewolf{core: c}
	w.refreshAllies()
	return w
}

func (w *Werewolf) Update(info *domain.GameInfo) {
	w.core.Update(info)
	w.refreshAllies()
}

// refreshAllies keeps fellow werewolves out of every candidate pool.
func (w *Werewolf) refreshAllies() {
	for a, r := range w.info.RoleMap {
		if r == domain.RoleWerewolf && a != w.me && !domain.Contains(w.exclude, a) {
			w.exclude = append(w.exclude, a)
		}
	}
}

func (w *Werewolf) Talk() domain.Statement {
	return w.villagerTalk()
}

func (w *Werewolf) Whisper() (domain.Statement, error) {
	return domain.Skip(), nil
}

func (w *Werewolf) NightAction(action Action) (domain.Agent, error) {
	if action != ActionAttack {
		return w.core.NightAction(action)
	}
	w.attackTarget = w.sel.PickStable(w.attackTarget, w.anyone())

	target := w.attackTarget
	if target == domain.AgentNone {
		target = w.me
	}
	w.logger.Debug("attacking", zap.Int("day", w.day()), zap.Stringer("target", target))
	return target, nil
}
