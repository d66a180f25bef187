package belief

import (
	"github.com/Harshitk-cp/wolfmind/internal/domain"
	"go.uber.org/zap"
)

// Ingest analyses the log entries appended since the previous call and returns how
// many were consumed. Entries authored by self are consumed without effect.
func (s *Store) Ingest(log []domain.Talk) int {
	if len(log) < s.cursor {
		s.logger.Warn("talk log shrank, ignoring",
			zap.Int("cursor", s.cursor),
			zap.Int("log_len", len(log)))
		return 0
	}

	consumed := len(log) - s.cursor
	for _, tk := range log[s.cursor:] {
		if tk.Agent == s.me {
			continue
		}
		s.apply(tk)
	}
	s.cursor = len(log)

	if consumed > 0 {
		s.logger.Debug("ingested talk log",
			zap.Int("consumed", consumed),
			zap.Int("cursor", s.cursor),
			zap.Int("claims", len(s.comingouts)))
	}
	return consumed
}

func (s *Store) apply(tk domain.Talk) {
	st := tk.Statement
	switch st.Topic {
	case domain.TopicComingout:
		if domain.IsValidRole(st.Role) {
			s.comingouts[tk.Agent] = st.Role
		}
	case domain.TopicDivined:
		if j, ok := judgementOf(tk); ok {
			s.divinations = append(s.divinations, j)
		}
	case domain.TopicIdentified:
		if j, ok := judgementOf(tk); ok {
			s.identifications = append(s.identifications, j)
		}
	case domain.TopicVote:
		if st.Target != domain.AgentNone {
			s.voteTalk = append(s.voteTalk, domain.Vote{Agent: tk.Agent, Day: tk.Day, Target: st.Target})
		}
	case domain.TopicVoted:
		if st.Target != domain.AgentNone {
			s.votedReports = append(s.votedReports, domain.Vote{Agent: tk.Agent, Day: tk.Day, Target: st.Target})
		}
	case domain.TopicOperator:
		if st.Operator != domain.OperatorRequest {
			return
		}
		for _, inner := range st.Contents {
			if inner.Topic == domain.TopicVote && inner.Target != domain.AgentNone {
				s.requestVoteTalk = append(s.requestVoteTalk, domain.Vote{Agent: tk.Agent, Day: tk.Day, Target: inner.Target})
			}
		}
	}
}

func judgementOf(tk domain.Talk) (domain.Judgement, bool) {
	st := tk.Statement
	if st.Target == domain.AgentNone {
		return domain.JudgementEmpty, false
	}
	if st.Result != domain.SpeciesHuman && st.Result != domain.SpeciesWerewolf {
		return domain.JudgementEmpty, false
	}
	return domain.Judgement{Agent: tk.Agent, Day: tk.Day, Target: st.Target, Result: st.Result}, true
}
