package domain

// GameInfo is the framework's snapshot of the game as seen by the agent.
// TalkList is the whole-game public log and only ever grows.
type GameInfo struct {
	Day           int              `json:"day"`
	Me            Agent            `json:"me"`
	Role          Role             `json:"role"`
	Agents        []Agent          `json:"agents"`
	StatusMap     map[Agent]Status `json:"status_map"`
	TalkList      []Talk           `json:"talk_list"`
	DivineResult  *Judgement       `json:"divine_result,omitempty"`
	MediumResult  *Judgement       `json:"medium_result,omitempty"`
	ExecutedAgent Agent            `json:"executed_agent,omitempty"`
	AttackedAgent Agent            `json:"attacked_agent,omitempty"`
	// RoleMap holds the roles the agent legitimately knows (itself, and fellow
	// werewolves when it is one).
	RoleMap map[Agent]Role `json:"role_map,omitempty"`
}

// IsAlive reports whether a is alive in this snapshot. Unknown agents are dead.
func (g *GameInfo) IsAlive(a Agent) bool {
	return g.StatusMap[a] == StatusAlive
}

// AliveAgents returns the living agents in roster order.
func (g *GameInfo) AliveAgents() []Agent {
	out := make([]Agent, 0, len(g.Agents))
	for _, a := range g.Agents {
		if g.IsAlive(a) {
			out = append(out, a)
		}
	}
	return out
}

// GameSetting is the per-game configuration.
type GameSetting struct {
	PlayerNum  int          `json:"player_num"`
	RoleNumMap map[Role]int `json:"role_num_map"`
	MaxTalk    int          `json:"max_talk,omitempty"`
}

// RoleCount returns the configured headcount for r.
func (s *GameSetting) RoleCount(r Role) int {
	if s == nil {
		return 0
	}
	return s.RoleNumMap[r]
}

// StatusLookup answers liveness queries.
type StatusLookup interface {
	IsAlive(a Agent) bool
}
