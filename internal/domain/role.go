package domain

type Role string

const (
	RoleVillager  Role = "VILLAGER"
	RoleBodyguard Role = "BODYGUARD"
	RoleSeer      Role = "SEER"
	RoleMedium    Role = "MEDIUM"
	RolePossessed Role = "POSSESSED"
	RoleWerewolf  Role = "WEREWOLF"
)

// Roles lists every role the agent can be dealt.
var Roles = []Role{RoleVillager, RoleBodyguard, RoleSeer, RoleMedium, RolePossessed, RoleWerewolf}

func IsValidRole(r Role) bool {
	for _, x := range Roles {
		if x == r {
			return true
		}
	}
	return false
}

// Species returns the investigation result a role yields.
func (r Role) Species() Species {
	if r == RoleWerewolf {
		return SpeciesWerewolf
	}
	return SpeciesHuman
}

type Species string

const (
	SpeciesHuman    Species = "HUMAN"
	SpeciesWerewolf Species = "WEREWOLF"
)

type Status string

const (
	StatusAlive Status = "ALIVE"
	StatusDead  Status = "DEAD"
)
