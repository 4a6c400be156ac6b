package specialist

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

func newChatTemplate(systemPrompt string) einoprompt.ChatTemplate {
	return einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)
}

func compileRouterGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (compose.Runnable[map[string]any, contractx.Role], error) {
	graph := compose.NewGraph[map[string]any, contractx.Role]()
	if err := graph.AddChatTemplateNode("prompt", newChatTemplate(systemPrompt)); err != nil {
		return nil, fmt.Errorf("add router prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add router model node: %w", err)
	}
	if err := graph.AddLambdaNode("match_role",
		compose.InvokableLambda(func(ctx context.Context, msg *schema.Message) (contractx.Role, error) {
			if msg == nil {
				return "", fmt.Errorf("%w: empty router response", contractx.ErrSchemaViolation)
			}
			return contractx.MatchRole(strings.TrimSpace(msg.Content)), nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add router match node: %w", err)
	}

	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add router edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add router edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", "match_role"); err != nil {
		return nil, fmt.Errorf("add router edge model->match: %w", err)
	}
	if err := graph.AddEdge("match_role", compose.END); err != nil {
		return nil, fmt.Errorf("add router edge match->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("router.classify_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile router graph: %w", err)
	}
	return runner, nil
}

// compileAgentRuntimeGraph wires validation in front of the conversation so
// an empty message never reaches the model.
func compileAgentRuntimeGraph(
	ctx context.Context,
	role contractx.Role,
	converse func(context.Context, contractx.SpecialistRequest) (contractx.SpecialistResponse, error),
) (compose.Runnable[contractx.SpecialistRequest, contractx.SpecialistResponse], error) {
	graph := compose.NewGraph[contractx.SpecialistRequest, contractx.SpecialistResponse]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, req contractx.SpecialistRequest) (contractx.SpecialistRequest, error) {
			req.UserMessage = strings.TrimSpace(req.UserMessage)
			if req.UserMessage == "" {
				return contractx.SpecialistRequest{}, fmt.Errorf("%w: user message is required", contractx.ErrValidation)
			}
			return req, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add agent validate node: %w", err)
	}

	if err := graph.AddLambdaNode("converse", compose.InvokableLambda(converse)); err != nil {
		return nil, fmt.Errorf("add agent converse node: %w", err)
	}

	if err := graph.AddEdge(compose.START, "validate_request"); err != nil {
		return nil, fmt.Errorf("add agent edge start->validate: %w", err)
	}
	if err := graph.AddEdge("validate_request", "converse"); err != nil {
		return nil, fmt.Errorf("add agent edge validate->converse: %w", err)
	}
	if err := graph.AddEdge("converse", compose.END); err != nil {
		return nil, fmt.Errorf("add agent edge converse->end: %w", err)
	}

	name := "agent." + strings.ToLower(string(role)) + "_graph"
	runner, err := graph.Compile(ctx, compose.WithGraphName(name))
	if err != nil {
		return nil, fmt.Errorf("compile agent runtime graph: %w", err)
	}
	return runner, nil
}
