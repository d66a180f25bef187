package domain

// Judgement is a real or claimed investigation result.
type Judgement struct {
	Agent  Agent   `json:"agent"`
	Day    int     `json:"day"`
	Target Agent   `json:"target"`
	Result Species `json:"result"`
}

// JudgementEmpty marks "no judgement produced".
var JudgementEmpty = Judgement{}

func (j Judgement) IsEmpty() bool {
	return j.Target == AgentNone
}

// Vote is a declared, requested or reported vote.
type Vote struct {
	Agent  Agent `json:"agent"`
	Day    int   `json:"day"`
	Target Agent `json:"target"`
}
