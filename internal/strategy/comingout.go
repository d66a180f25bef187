package strategy

// comingout is the reveal state machine: pending until the scheduled day is
// reached or an early trigger fires, then revealed for the rest of the game.
type comingout struct {
	day      int
	revealed bool
}

func (c *comingout) due(today int, early bool) bool {
	return !c.revealed && (today >= c.day || early)
}

func (c *comingout) reveal() {
	c.revealed = true
}
