package player

import (
	"math/rand/v2"
	"testing"

	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/Harshitk-cp/wolfmind/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func snapshot(role domain.Role, day int) *domain.GameInfo {
	info := &domain.GameInfo{
		Day:       day,
		Me:        1,
		Role:      role,
		StatusMap: map[domain.Agent]domain.Status{},
	}
	for a := domain.Agent(1); a <= 5; a++ {
		info.Agents = append(info.Agents, a)
		info.StatusMap[a] = domain.StatusAlive
	}
	return info
}

func options() strategy.Options {
	opts := strategy.DefaultOptions()
	opts.Rand = rand.New(rand.NewPCG(1, 2))
	opts.Logger = zap.NewNop()
	return opts
}

func setting() *domain.GameSetting {
	return &domain.GameSetting{PlayerNum: 5, RoleNumMap: map[domain.Role]int{domain.RoleWerewolf: 1}}
}

func TestNewGame_BindsRole(t *testing.T) {
	for _, role := range domain.Roles {
		g, err := NewGame(snapshot(role, 0), setting(), options())
		require.NoError(t, err)
		assert.Equal(t, role, g.Role())
	}
}

func TestNewGame_UnknownRole(t *testing.T) {
	_, err := NewGame(snapshot("FOX", 0), setting(), options())
	assert.ErrorIs(t, err, strategy.ErrUnknownRole)
}

func TestGame_DayStart_IngestsLog(t *testing.T) {
	g, err := NewGame(snapshot(domain.RoleVillager, 0), setting(), options())
	require.NoError(t, err)

	info := snapshot(domain.RoleVillager, 1)
	info.TalkList = []domain.Talk{
		{Index: 0, Day: 1, Agent: 3, Statement: domain.VoteStatement(1)},
	}
	g.DayStart(info)
	assert.Equal(t, 1, g.Beliefs().Cursor)

	assert.Equal(t, domain.VoteStatement(3), g.Talk())
	assert.Equal(t, domain.Agent(3), g.Vote())
}

func TestGame_NightActionsByRole(t *testing.T) {
	g, err := NewGame(snapshot(domain.RoleSeer, 0), setting(), options())
	require.NoError(t, err)

	target, err := g.Divine()
	require.NoError(t, err)
	assert.NotEqual(t, domain.AgentNone, target)

	_, err = g.Guard()
	assert.ErrorIs(t, err, strategy.ErrUnsupportedAction)
	_, err = g.Attack()
	assert.ErrorIs(t, err, strategy.ErrUnsupportedAction)
	_, err = g.Whisper()
	assert.ErrorIs(t, err, strategy.ErrUnsupportedAction)
}

func TestGame_Finish_Idempotent(t *testing.T) {
	g, err := NewGame(snapshot(domain.RoleWerewolf, 0), setting(), options())
	require.NoError(t, err)

	g.Finish()
	g.Finish()
	assert.True(t, g.Finished())
}
