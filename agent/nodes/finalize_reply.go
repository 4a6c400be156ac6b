package orchestratornode

import (
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

const CannedPrompt = "How can I help you?"

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: %v", contractx.ErrValidation, ErrNilState)
	}

	reply := strings.TrimSpace(in.Message)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: specialist returned empty message", contractx.ErrValidation)
	}
	return GraphOutput{
		Reply:     reply,
		Role:      in.Role,
		ToolCalls: in.ToolCalls,
		Degraded:  in.Degraded,
	}, nil
}

// CannedReply answers a history without any user turn.
func CannedReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: %v", contractx.ErrValidation, ErrNilState)
	}
	return GraphOutput{Reply: CannedPrompt}, nil
}
