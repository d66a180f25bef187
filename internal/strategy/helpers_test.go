package strategy

import (
	"math/rand/v2"
	"testing"

	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// table is a scripted game: a roster, a running log and the current day.
type table struct {
	info    *domain.GameInfo
	setting *domain.GameSetting
}

func newTable(me domain.Agent, role domain.Role, players int) *table {
	info := &domain.GameInfo{
		Me:        me,
		Role:      role,
		StatusMap: make(map[domain.Agent]domain.Status),
		RoleMap:   map[domain.Agent]domain.Role{me: role},
	}
	for i := 1; i <= players; i++ {
		a := domain.Agent(i)
		info.Agents = append(info.Agents, a)
		info.StatusMap[a] = domain.StatusAlive
	}
	setting := &domain.GameSetting{
		PlayerNum: players,
		RoleNumMap: map[domain.Role]int{
			domain.RoleWerewolf:  1,
			domain.RoleSeer:      1,
			domain.RolePossessed: 1,
			domain.RoleVillager:  players - 3,
		},
	}
	return &table{info: info, setting: setting}
}

func (tb *table) say(agent domain.Agent, st domain.Statement) {
	tb.info.TalkList = append(tb.info.TalkList, domain.Talk{
		Index:     len(tb.info.TalkList),
		Day:       tb.info.Day,
		Agent:     agent,
		Statement: st,
	})
}

func (tb *table) kill(a domain.Agent) {
	tb.info.StatusMap[a] = domain.StatusDead
}

// snapshot returns a copy so strategies never observe later mutations.
func (tb *table) snapshot() *domain.GameInfo {
	cp := *tb.info
	cp.TalkList = append([]domain.Talk(nil), tb.info.TalkList...)
	cp.StatusMap = make(map[domain.Agent]domain.Status, len(tb.info.StatusMap))
	for a, s := range tb.info.StatusMap {
		cp.StatusMap[a] = s
	}
	return &cp
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func testOptions(seed uint64) Options {
	opts := DefaultOptions()
	opts.Rand = seeded(seed)
	opts.Logger = zap.NewNop()
	return opts
}

func bind(t *testing.T, tb *table, opts Options) Strategy {
	t.Helper()
	s, err := New(tb.snapshot(), tb.setting, opts)
	require.NoError(t, err)
	return s
}

// startDay delivers a day-start snapshot.
func startDay(s Strategy, tb *table, day int) {
	tb.info.Day = day
	s.Update(tb.snapshot())
	s.DayStart()
}

// talk refreshes the strategy and returns its next statement.
func talk(s Strategy, tb *table) domain.Statement {
	s.Update(tb.snapshot())
	return s.Talk()
}
