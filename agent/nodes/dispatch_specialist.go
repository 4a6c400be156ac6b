package orchestratornode

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

func DispatchSpecialist(
	ctx context.Context,
	in *GraphState,
	models contractx.Registry,
) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}

	specialist := models.Specialist(in.Role)
	if specialist == nil {
		return nil, fmt.Errorf("%w: no specialist for role=%s", contractx.ErrValidation, in.Role)
	}

	resp, err := specialist.Run(ctx, contractx.SpecialistRequest{
		UserMessage: in.Text,
	})
	if err != nil {
		return nil, err
	}

	in.Message = strings.TrimSpace(resp.Message)
	in.ToolCalls = resp.ToolCalls
	in.Degraded = resp.Degraded
	return in, nil
}
