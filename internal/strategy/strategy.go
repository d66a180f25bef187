// Package strategy implements one decision policy per role. Each game binds
// exactly one Strategy; the shared helpers (belief store, selector, fallback
// chain) are composed into every variant through core.
package strategy

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Harshitk-cp/wolfmind/internal/belief"
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"go.uber.org/zap"
)

var (
	// ErrUnsupportedAction means a callback was invoked for an ability the bound
	// role does not have. It indicates a dispatch bug and is fatal for the game.
	ErrUnsupportedAction = errors.New("action not supported by role")
	ErrUnknownRole       = errors.New("unknown role")
	ErrInvalidSnapshot   = errors.New("invalid game snapshot")
)

// Action is a night ability.
type Action string

const (
	ActionDivine Action = "divine"
	ActionGuard  Action = "guard"
	ActionAttack Action = "attack"
)

// Strategy is the per-role decision policy.
type Strategy interface {
	Role() domain.Role
	// Update ingests a newer snapshot. Safe to call any number of times.
	Update(info *domain.GameInfo)
	DayStart()
	Talk() domain.Statement
	Whisper() (domain.Statement, error)
	// Vote never returns domain.AgentNone.
	Vote() domain.Agent
	NightAction(action Action) (domain.Agent, error)
	Finish()
	Beliefs() *belief.Store
}

// Persona selects which investigator the possessed impersonates.
type Persona string

const (
	PersonaSeer   Persona = "seer"
	PersonaMedium Persona = "medium"
	PersonaRandom Persona = "random"
)

// Options tunes the heuristics. The defaults are the values the strategies were
// designed around.
type Options struct {
	SeerComingoutDay        int
	MediumComingoutDay      int
	PossessedComingoutDay   int
	PossessedPersona        Persona
	FakeWerewolfProbability float64

	Rand   *rand.Rand
	Logger *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		SeerComingoutDay:        3,
		MediumComingoutDay:      3,
		PossessedComingoutDay:   1,
		PossessedPersona:        PersonaSeer,
		FakeWerewolfProbability: 0.5,
	}
}

// New binds the strategy for info.Role.
func New(info *domain.GameInfo, setting *domain.GameSetting, opts Options) (Strategy, error) {
	if info == nil || info.Me == domain.AgentNone {
		return nil, fmt.Errorf("%w: missing self", ErrInvalidSnapshot)
	}
	if setting == nil {
		setting = &domain.GameSetting{}
	}

	c := newCore(info, setting, opts)
	switch info.Role {
	case domain.RoleVillager:
		return newVillager(c), nil
	case domain.RoleBodyguard:
		return newBodyguard(c), nil
	case domain.RoleSeer:
		return newSeer(c, opts.SeerComingoutDay), nil
	case domain.RoleMedium:
		return newMedium(c, opts.MediumComingoutDay), nil
	case domain.RolePossessed:
		return newPossessed(c, opts), nil
	case domain.RoleWerewolf:
		return newWerewolf(c), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, info.Role)
	}
}
