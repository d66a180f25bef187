package strategy

import (
	"errors"
	"testing"

	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BindsStrategyPerRole(t *testing.T) {
	tests := []struct {
		role domain.Role
		want any
	}{
		{domain.RoleVillager, &Villager{}},
		{domain.RoleBodyguard, &Bodyguard{}},
		{domain.RoleSeer, &Seer{}},
		{domain.RoleMedium, &Medium{}},
		{domain.RolePossessed, &Possessed{}},
		{domain.RoleWerewolf, &Werewolf{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			s := bind(t, newTable(1, tt.role, 5), testOptions(1))
			assert.IsType(t, tt.want, s)
			assert.Equal(t, tt.role, s.Role())
			assert.NotNil(t, s.Beliefs())
		})
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := New(nil, nil, testOptions(1))
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	tb := newTable(1, domain.Role("HUNTER"), 5)
	_, err = New(tb.snapshot(), tb.setting, testOptions(1))
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestStrategy_UnsupportedActions(t *testing.T) {
	tests := []struct {
		role    domain.Role
		allowed Action
	}{
		{domain.RoleVillager, ""},
		{domain.RoleMedium, ""},
		{domain.RolePossessed, ""},
		{domain.RoleSeer, ActionDivine},
		{domain.RoleBodyguard, ActionGuard},
		{domain.RoleWerewolf, ActionAttack},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			s := bind(t, newTable(1, tt.role, 5), testOptions(2))
			for _, action := range []Action{ActionDivine, ActionGuard, ActionAttack} {
				target, err := s.NightAction(action)
				if action == tt.allowed {
					require.NoError(t, err)
					assert.NotEqual(t, domain.AgentNone, target)
					continue
				}
				assert.True(t, errors.Is(err, ErrUnsupportedAction), "%s %s", tt.role, action)
				assert.Equal(t, domain.AgentNone, target)
			}

			_, err := s.Whisper()
			if tt.role == domain.RoleWerewolf {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUnsupportedAction)
			}
		})
	}
}

func TestStrategy_VoteDefaultsToSelf(t *testing.T) {
	for _, role := range domain.Roles {
		s := bind(t, newTable(1, role, 5), testOptions(3))
		assert.Equal(t, domain.Agent(1), s.Vote(), role)
	}
}

func TestVillager_Talk_DeclaresOnceThenSkips(t *testing.T) {
	tb := newTable(1, domain.RoleVillager, 5)
	s := bind(t, tb, testOptions(4))
	startDay(s, tb, 1)

	tb.say(3, domain.VoteStatement(1))
	st := talk(s, tb)
	assert.Equal(t, domain.VoteStatement(3), st)
	assert.Equal(t, domain.Agent(3), s.Vote())

	// Same pool, same target: nothing new to say.
	assert.True(t, talk(s, tb).IsSkip())
	assert.Equal(t, domain.Agent(3), s.Vote())
}

func TestVillager_Talk_PoolPriority(t *testing.T) {
	tb := newTable(1, domain.RoleVillager, 6)
	s := bind(t, tb, testOptions(5))
	startDay(s, tb, 1)

	tb.say(2, domain.VoteStatement(1))
	assert.Equal(t, domain.VoteStatement(2), talk(s, tb))

	// A credible werewolf report outranks every other pool.
	tb.say(4, domain.ComingoutStatement(4, domain.RoleSeer))
	tb.say(4, domain.DivinedStatement(5, domain.SpeciesWerewolf))
	assert.Equal(t, domain.VoteStatement(5), talk(s, tb))
	assert.Equal(t, domain.Agent(5), s.Vote())
}

func TestVillager_Talk_IgnoresDeadAndYesterday(t *testing.T) {
	tb := newTable(1, domain.RoleVillager, 5)
	s := bind(t, tb, testOptions(6))
	startDay(s, tb, 1)
	tb.say(2, domain.VoteStatement(1))

	startDay(s, tb, 2)
	tb.kill(3)
	tb.say(3, domain.VoteStatement(1))

	st := talk(s, tb)
	require.Equal(t, domain.TopicVote, st.Topic)
	assert.NotEqual(t, domain.Agent(1), st.Target)
	assert.NotEqual(t, domain.Agent(3), st.Target)
}

func TestVillager_Talk_FakeSeerPool(t *testing.T) {
	tb := newTable(1, domain.RoleVillager, 5)
	s := bind(t, tb, testOptions(7))
	startDay(s, tb, 1)

	tb.say(4, domain.DivinedStatement(1, domain.SpeciesWerewolf))
	tb.say(4, domain.DivinedStatement(2, domain.SpeciesWerewolf))

	// Reports from a seer accusing self are not credible, so agent 2 is not a
	// candidate but the accuser is.
	assert.Equal(t, domain.VoteStatement(4), talk(s, tb))
}

func TestVillager_DayStartClearsDeclaration(t *testing.T) {
	tb := newTable(1, domain.RoleVillager, 5)
	s := bind(t, tb, testOptions(8))
	startDay(s, tb, 1)
	tb.say(2, domain.VoteStatement(1))
	talk(s, tb)
	require.Equal(t, domain.Agent(2), s.Vote())

	startDay(s, tb, 2)
	assert.Equal(t, domain.Agent(1), s.Vote())
}
