package specialist

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

const degradedReplyFormat = "I encountered an error: %v"

type specialistImpl struct {
	role      contractx.Role
	chatModel einomodel.ToolCallingChatModel
	template  einoprompt.ChatTemplate
	toolInfos []*schema.ToolInfo
	tools     map[string]einotool.InvokableTool
	maxRounds int
	runner    compose.Runnable[contractx.SpecialistRequest, contractx.SpecialistResponse]
}

var _ contractx.Specialist = (*specialistImpl)(nil)

func newSpecialist(
	ctx context.Context,
	role contractx.Role,
	chatModel einomodel.ToolCallingChatModel,
	systemPrompt string,
	tools []einotool.InvokableTool,
	maxRounds int,
) (*specialistImpl, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required for role=%s", contractx.ErrValidation, role)
	}
	if maxRounds <= 0 {
		return nil, fmt.Errorf("%w: max tool rounds must be positive", contractx.ErrValidation)
	}

	sp := &specialistImpl{
		role:      role,
		chatModel: chatModel,
		template:  newChatTemplate(systemPrompt),
		toolInfos: make([]*schema.ToolInfo, 0, len(tools)),
		tools:     make(map[string]einotool.InvokableTool, len(tools)),
		maxRounds: maxRounds,
	}
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: read tool info for role=%s: %v", contractx.ErrValidation, role, err)
		}
		sp.toolInfos = append(sp.toolInfos, info)
		sp.tools[info.Name] = t
	}

	runner, err := compileAgentRuntimeGraph(ctx, role, sp.converse)
	if err != nil {
		return nil, fmt.Errorf("%w: compile agent graph: %v", contractx.ErrModelInvoke, err)
	}
	sp.runner = runner

	return sp, nil
}

// Run answers one guest message. Failures on the model side come back as a
// degraded reply, never as an error.
func (s *specialistImpl) Run(ctx context.Context, req contractx.SpecialistRequest) (contractx.SpecialistResponse, error) {
	out, err := s.runner.Invoke(ctx, req)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("role", string(s.role)).Msg("agent run failed")
		return contractx.SpecialistResponse{
			Message:  fmt.Sprintf(degradedReplyFormat, err),
			Degraded: true,
		}, nil
	}
	return out, nil
}

// converse drives one fresh model session: generate, run any requested
// tools in order, feed results back, until the model answers in text.
func (s *specialistImpl) converse(ctx context.Context, req contractx.SpecialistRequest) (contractx.SpecialistResponse, error) {
	session, err := s.chatModel.WithTools(s.toolInfos)
	if err != nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: bind tools for role=%s: %v", contractx.ErrModelInvoke, s.role, err)
	}

	messages, err := s.template.Format(ctx, map[string]any{
		"input": req.UserMessage,
	})
	if err != nil {
		return contractx.SpecialistResponse{}, fmt.Errorf("%w: render prompt: %v", contractx.ErrValidation, err)
	}

	var calls []contractx.ToolInvocation
	for round := 0; round < s.maxRounds; round++ {
		msg, err := session.Generate(ctx, messages)
		if err != nil {
			return contractx.SpecialistResponse{}, fmt.Errorf("%w: generate: %v", contractx.ErrModelInvoke, err)
		}
		if msg == nil {
			return contractx.SpecialistResponse{}, fmt.Errorf("%w: empty model response", contractx.ErrSchemaViolation)
		}

		if len(msg.ToolCalls) == 0 {
			content := strings.TrimSpace(msg.Content)
			if content == "" {
				return contractx.SpecialistResponse{}, fmt.Errorf("%w: model returned neither text nor tool calls", contractx.ErrSchemaViolation)
			}
			return contractx.SpecialistResponse{
				Message:   content,
				ToolCalls: calls,
			}, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			result := s.invokeTool(ctx, call)
			calls = append(calls, contractx.ToolInvocation{
				Tool:      call.Function.Name,
				Arguments: call.Function.Arguments,
				Result:    result,
			})
			messages = append(messages, schema.ToolMessage(result, call.ID))
		}
	}

	return contractx.SpecialistResponse{}, fmt.Errorf("%w: role=%s rounds=%d", contractx.ErrToolLoopExceeded, s.role, s.maxRounds)
}

// invokeTool executes one call. Unknown tools and tool errors become text the
// model can read.
func (s *specialistImpl) invokeTool(ctx context.Context, call schema.ToolCall) string {
	name := strings.TrimSpace(call.Function.Name)
	t, ok := s.tools[name]
	if !ok {
		log.Ctx(ctx).Warn().Str("role", string(s.role)).Str("tool", name).Msg("tool is not allowed for role")
		return fmt.Sprintf("Error: tool '%s' is not available at the %s desk.", name, s.role)
	}

	out, err := t.InvokableRun(ctx, call.Function.Arguments)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("tool", name).Msg("tool failed")
		return fmt.Sprintf("Error: %v", err)
	}
	return out
}
