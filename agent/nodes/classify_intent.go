package orchestratornode

import (
	"context"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

func ClassifyIntent(ctx context.Context, in *GraphState, router contractx.Router) (*GraphState, error) {
	if in == nil {
		return nil, ErrNilState
	}
	in.Role = router.Classify(ctx, in.Text)
	if !in.Role.Valid() {
		in.Role = contractx.RoleReceptionist
	}
	return in, nil
}
