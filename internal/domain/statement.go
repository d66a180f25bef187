package domain

// Topic tags the kind of a structured statement.
type Topic string

const (
	TopicComingout  Topic = "COMINGOUT"
	TopicEstimate   Topic = "ESTIMATE"
	TopicDivined    Topic = "DIVINED"
	TopicIdentified Topic = "IDENTIFIED"
	TopicGuarded    Topic = "GUARDED"
	TopicVote       Topic = "VOTE"
	TopicVoted      Topic = "VOTED"
	TopicAttack     Topic = "ATTACK"
	TopicOperator   Topic = "OPERATOR"
	TopicSkip       Topic = "SKIP"
	TopicOver       Topic = "OVER"
)

// Operator wraps nested statements.
type Operator string

const (
	OperatorRequest Operator = "REQUEST"
	OperatorInquire Operator = "INQUIRE"
	OperatorBecause Operator = "BECAUSE"
	OperatorNot     Operator = "NOT"
)

// Statement is the typed form of one public utterance. Only the fields relevant
// to Topic are set; Contents is used by OPERATOR statements.
type Statement struct {
	Topic    Topic       `json:"topic"`
	Subject  Agent       `json:"subject,omitempty"`
	Target   Agent       `json:"target,omitempty"`
	Role     Role        `json:"role,omitempty"`
	Result   Species     `json:"result,omitempty"`
	Operator Operator    `json:"operator,omitempty"`
	Contents []Statement `json:"contents,omitempty"`
}

// Skip is the "no statement" marker.
func Skip() Statement { return Statement{Topic: TopicSkip} }

func Over() Statement { return Statement{Topic: TopicOver} }

func (s Statement) IsSkip() bool { return s.Topic == TopicSkip }

func ComingoutStatement(subject Agent, role Role) Statement {
	return Statement{Topic: TopicComingout, Subject: subject, Target: subject, Role: role}
}

func DivinedStatement(target Agent, result Species) Statement {
	return Statement{Topic: TopicDivined, Target: target, Result: result}
}

func IdentifiedStatement(target Agent, result Species) Statement {
	return Statement{Topic: TopicIdentified, Target: target, Result: result}
}

func VoteStatement(target Agent) Statement {
	return Statement{Topic: TopicVote, Target: target}
}

func VotedStatement(target Agent) Statement {
	return Statement{Topic: TopicVoted, Target: target}
}

// RequestStatement asks subject (AgentNone for anyone) to act on contents.
func RequestStatement(subject Agent, contents ...Statement) Statement {
	return Statement{Topic: TopicOperator, Operator: OperatorRequest, Subject: subject, Contents: contents}
}

// Talk is one entry of the public log.
type Talk struct {
	Index     int       `json:"index"`
	Day       int       `json:"day"`
	Turn      int       `json:"turn"`
	Agent     Agent     `json:"agent"`
	Statement Statement `json:"statement"`
}
