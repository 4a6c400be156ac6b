package orchestratornode

import (
	"errors"
	"strings"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

var ErrNilState = errors.New("graph state is nil")

type GraphInput struct {
	History []contractx.Turn
}

type GraphOutput struct {
	Reply     string
	Role      contractx.Role
	ToolCalls []contractx.ToolInvocation
	Degraded  bool
}

type GraphState struct {
	Text        string
	HasUserTurn bool

	Role contractx.Role

	Message   string
	ToolCalls []contractx.ToolInvocation
	Degraded  bool
}

// ExtractLatestTurn keeps only the most recent user turn. A blank one counts
// as no turn at all.
func ExtractLatestTurn(in GraphInput) (*GraphState, error) {
	text, ok := contractx.LatestUserText(in.History)
	text = strings.TrimSpace(text)
	return &GraphState{
		Text:        text,
		HasUserTurn: ok && text != "",
	}, nil
}
