package specialist

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
	llmx "github.com/tanpawarit/Resort-Concierge-Agents/agent/llm"
	promptx "github.com/tanpawarit/Resort-Concierge-Agents/agent/prompt"
	toolx "github.com/tanpawarit/Resort-Concierge-Agents/agent/tool"
)

// ModelFactory builds the chat model for one stage.
type ModelFactory func(ctx context.Context, stage llmx.Stage) (einomodel.ToolCallingChatModel, error)

type registryImpl struct {
	router      contractx.Router
	specialists map[contractx.Role]contractx.Specialist
}

func (r *registryImpl) Router() contractx.Router {
	return r.router
}

// Specialist falls back to the receptionist for unknown roles.
func (r *registryImpl) Specialist(role contractx.Role) contractx.Specialist {
	if s, ok := r.specialists[role]; ok {
		return s
	}
	return r.specialists[contractx.RoleReceptionist]
}

func NewRegistry(ctx context.Context, cfg llmx.Config, tools *toolx.Set) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	factory := func(ctx context.Context, stage llmx.Stage) (einomodel.ToolCallingChatModel, error) {
		modelCfg := cfg.OpenRouterFor(stage)
		return modelCfg.New(ctx)
	}
	return buildRegistry(ctx, factory, tools, cfg.MaxToolRounds)
}

func buildRegistry(ctx context.Context, newModel ModelFactory, tools *toolx.Set, maxRounds int) (*registryImpl, error) {
	if tools == nil {
		return nil, fmt.Errorf("%w: tool set is required", contractx.ErrValidation)
	}

	prompts := promptx.LoadPromptSet()
	if prompts.Router == "" {
		return nil, fmt.Errorf("%w: router", contractx.ErrPromptMissing)
	}

	routerModel, err := newModel(ctx, llmx.StageRouter)
	if err != nil {
		return nil, fmt.Errorf("%w: create router model: %v", contractx.ErrModelInvoke, err)
	}
	router, err := newRouter(ctx, routerModel, prompts.Router)
	if err != nil {
		return nil, err
	}

	reg := &registryImpl{
		router:      router,
		specialists: make(map[contractx.Role]contractx.Specialist, len(contractx.Roles)),
	}
	for _, role := range contractx.Roles {
		systemPrompt, err := prompts.For(role)
		if err != nil {
			return nil, err
		}
		roleTools, err := tools.ForRole(role)
		if err != nil {
			return nil, err
		}
		chatModel, err := newModel(ctx, llmx.StageFor(role))
		if err != nil {
			return nil, fmt.Errorf("%w: create %s model: %v", contractx.ErrModelInvoke, role, err)
		}

		sp, err := newSpecialist(ctx, role, chatModel, systemPrompt, roleTools, maxRounds)
		if err != nil {
			return nil, err
		}
		reg.specialists[role] = sp
	}

	return reg, nil
}
