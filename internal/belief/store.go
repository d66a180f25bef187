// Package belief holds what the agent has learned from the public log.
package belief

import (
	"sort"

	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"go.uber.org/zap"
)

// Store accumulates claims extracted from the public log. It belongs to a single
// game and is only touched from that game's turn calls.
type Store struct {
	me     domain.Agent
	logger *zap.Logger

	comingouts      map[domain.Agent]domain.Role
	divinations     []domain.Judgement
	identifications []domain.Judgement
	voteTalk        []domain.Vote
	votedReports    []domain.Vote
	requestVoteTalk []domain.Vote

	// cursor is the index of the next log entry to analyse.
	cursor int
}

func NewStore(me domain.Agent, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		me:         me,
		logger:     logger,
		comingouts: make(map[domain.Agent]domain.Role),
	}
}

// Cursor returns how many log entries have been consumed.
func (s *Store) Cursor() int {
	return s.cursor
}

// ClaimedRole returns the latest role a has claimed.
func (s *Store) ClaimedRole(a domain.Agent) (domain.Role, bool) {
	r, ok := s.comingouts[a]
	return r, ok
}

// Claimants returns every agent whose latest claim is role, in seat order.
func (s *Store) Claimants(role domain.Role) []domain.Agent {
	var out []domain.Agent
	for a, r := range s.comingouts {
		if r == role {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Store) Divinations() []domain.Judgement {
	return append([]domain.Judgement(nil), s.divinations...)
}

func (s *Store) Identifications() []domain.Judgement {
	return append([]domain.Judgement(nil), s.identifications...)
}

// Accusers returns the agents that reported target as a werewolf via divination.
func (s *Store) Accusers(target domain.Agent) []domain.Agent {
	var out []domain.Agent
	for _, j := range s.divinations {
		if j.Target == target && j.Result == domain.SpeciesWerewolf && !domain.Contains(out, j.Agent) {
			out = append(out, j.Agent)
		}
	}
	return out
}

// Diviners returns every agent that has reported a divination result.
func (s *Store) Diviners() []domain.Agent {
	var out []domain.Agent
	for _, j := range s.divinations {
		if !domain.Contains(out, j.Agent) {
			out = append(out, j.Agent)
		}
	}
	return out
}

// ReportedWerewolves returns targets divined as werewolves by seers that have not
// accused self. A seer that calls us a werewolf is lying, so its other reports are
// discarded too.
func (s *Store) ReportedWerewolves() []domain.Agent {
	fake := s.Accusers(s.me)
	var out []domain.Agent
	for _, j := range s.divinations {
		if j.Result != domain.SpeciesWerewolf || domain.Contains(fake, j.Agent) {
			continue
		}
		if !domain.Contains(out, j.Target) {
			out = append(out, j.Target)
		}
	}
	return out
}

// DeclaredVoters returns agents that said on day they will vote for target.
func (s *Store) DeclaredVoters(target domain.Agent, day int) []domain.Agent {
	return voters(s.voteTalk, target, day)
}

// Requesters returns agents that asked others on day to vote for target.
func (s *Store) Requesters(target domain.Agent, day int) []domain.Agent {
	return voters(s.requestVoteTalk, target, day)
}

// ReportedVoters returns agents that reported on day having voted for target.
func (s *Store) ReportedVoters(target domain.Agent, day int) []domain.Agent {
	return voters(s.votedReports, target, day)
}

// voters filters by target and day; day <= 0 matches every day.
func voters(votes []domain.Vote, target domain.Agent, day int) []domain.Agent {
	var out []domain.Agent
	for _, v := range votes {
		if v.Target != target || (day > 0 && v.Day != day) {
			continue
		}
		if !domain.Contains(out, v.Agent) {
			out = append(out, v.Agent)
		}
	}
	return out
}

// Snapshot is a read-only copy of the store for inspection.
type Snapshot struct {
	Cursor          int                          `json:"cursor"`
	Comingouts      map[domain.Agent]domain.Role `json:"comingouts"`
	Divinations     []domain.Judgement           `json:"divinations"`
	Identifications []domain.Judgement           `json:"identifications"`
	VoteTalk        []domain.Vote                `json:"vote_talk"`
	VotedReports    []domain.Vote                `json:"voted_reports"`
	RequestVoteTalk []domain.Vote                `json:"request_vote_talk"`
}

func (s *Store) Snapshot() Snapshot {
	co := make(map[domain.Agent]domain.Role, len(s.comingouts))
	for a, r := range s.comingouts {
		co[a] = r
	}
	return Snapshot{
		Cursor:          s.cursor,
		Comingouts:      co,
		Divinations:     s.Divinations(),
		Identifications: s.Identifications(),
		VoteTalk:        append([]domain.Vote(nil), s.voteTalk...),
		VotedReports:    append([]domain.Vote(nil), s.votedReports...),
		RequestVoteTalk: append([]domain.Vote(nil), s.requestVoteTalk...),
	}
}
