package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Agent identifies a game participant by its 1-based seat index.
type Agent int

// AgentNone is the sentinel for "no agent".
const AgentNone Agent = 0

func (a Agent) String() string {
	if a == AgentNone {
		return "ANY"
	}
	return fmt.Sprintf("Agent[%02d]", int(a))
}

// Index returns the seat index.
func (a Agent) Index() int {
	return int(a)
}

// ParseAgent accepts either "Agent[03]" or a bare index.
func ParseAgent(s string) (Agent, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "ANY" {
		return AgentNone, nil
	}
	if strings.HasPrefix(s, "Agent[") && strings.HasSuffix(s, "]") {
		s = s[len("Agent[") : len(s)-1]
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 0 {
		return AgentNone, fmt.Errorf("invalid agent %q", s)
	}
	return Agent(idx), nil
}

// UnmarshalJSON accepts both numeric and "Agent[NN]" encodings.
func (a *Agent) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*a = Agent(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("agent must be a number or string: %w", err)
	}
	parsed, err := ParseAgent(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Contains reports whether agents holds a.
func Contains(agents []Agent, a Agent) bool {
	for _, x := range agents {
		if x == a {
			return true
		}
	}
	return false
}
