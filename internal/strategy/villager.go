package strategy

import "github.com/Harshitk-cp/wolfmind/internal/domain"

// Villager has no ability and never reveals.
type Villager struct {
	*core
}

func newVillager(c *core) *Villager {
	return &Villager{core: c}
}

func (v *Villager) Talk() domain.Statement {
	return v.villagerTalk()
}
