package specialist

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

type routerImpl struct {
	runner compose.Runnable[map[string]any, contractx.Role]
}

var _ contractx.Router = (*routerImpl)(nil)

func newRouter(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*routerImpl, error) {
	runner, err := compileRouterGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile router graph: %v", contractx.ErrModelInvoke, err)
	}
	return &routerImpl{runner: runner}, nil
}

// Classify never fails: any model error routes to the receptionist.
func (r *routerImpl) Classify(ctx context.Context, message string) contractx.Role {
	role, err := r.runner.Invoke(ctx, map[string]any{
		"input": message,
	})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("classification failed, falling back to receptionist")
		role = contractx.RoleReceptionist
	}
	if !role.Valid() {
		role = contractx.RoleReceptionist
	}

	log.Ctx(ctx).Info().Str("role", string(role)).Str("text", message).Msg("routing message")
	return role
}
