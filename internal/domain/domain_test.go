package domain

import (
	"encoding/json"
	"testing"
)

func TestAgentString(t *testing.T) {
	tests := []struct {
		name  string
		agent Agent
		want  string
	}{
		{"none", AgentNone, "ANY"},
		{"single digit", Agent(3), "Agent[03]"},
		{"two digits", Agent(12), "Agent[12]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.agent.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAgent(t *testing.T) {
	tests := []struct {
		in      string
		want    Agent
		wantErr bool
	}{
		{"Agent[05]", Agent(5), false},
		{"7", Agent(7), false},
		{"ANY", AgentNone, false},
		{"", AgentNone, false},
		{"Agent[x]", AgentNone, true},
		{"-1", AgentNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAgent(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAgent(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAgent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAgentUnmarshalJSON(t *testing.T) {
	var v struct {
		A Agent `json:"a"`
		B Agent `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 4, "b": "Agent[09]"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.A != Agent(4) || v.B != Agent(9) {
		t.Errorf("got %v %v, want Agent[04] Agent[09]", v.A, v.B)
	}
}

func TestRoleSpecies(t *testing.T) {
	for _, r := range Roles {
		want := SpeciesHuman
		if r == RoleWerewolf {
			want = SpeciesWerewolf
		}
		if got := r.Species(); got != want {
			t.Errorf("%s.Species() = %s, want %s", r, got, want)
		}
	}
	if IsValidRole(Role("HUNTER")) {
		t.Error("HUNTER should not be a valid role")
	}
}

func TestGameInfoAlive(t *testing.T) {
	info := &GameInfo{
		Agents: []Agent{1, 2, 3},
		StatusMap: map[Agent]Status{
			1: StatusAlive,
			2: StatusDead,
			3: StatusAlive,
		},
	}

	alive := info.AliveAgents()
	if len(alive) != 2 || alive[0] != 1 || alive[1] != 3 {
		t.Errorf("AliveAgents() = %v, want [1 3]", alive)
	}
	if info.IsAlive(Agent(9)) {
		t.Error("unknown agent should not be alive")
	}
}

func TestRequestStatement(t *testing.T) {
	s := RequestStatement(AgentNone, VoteStatement(Agent(2)))
	if s.Topic != TopicOperator || s.Operator != OperatorRequest {
		t.Fatalf("unexpected wrapper %+v", s)
	}
	if len(s.Contents) != 1 || s.Contents[0].Target != Agent(2) {
		t.Errorf("unexpected contents %+v", s.Contents)
	}
}
