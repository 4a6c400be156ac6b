package orchestrator

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
	nodex "github.com/tanpawarit/Resort-Concierge-Agents/agent/nodes"
)

const CannedPrompt = nodex.CannedPrompt

type Orchestrator struct {
	models contractx.Registry

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

func New(models contractx.Registry) (*Orchestrator, error) {
	if models == nil {
		return nil, errors.New("model registry is required")
	}
	if models.Router() == nil {
		return nil, errors.New("router is required")
	}

	o := &Orchestrator{
		models: models,
	}

	graphRunner, err := o.compileChatGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// Chat answers the latest user turn of history. Earlier turns are ignored.
func (o *Orchestrator) Chat(ctx context.Context, history []contractx.Turn) (string, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		History: history,
	})
	if err != nil {
		return "", err
	}

	if out.Role != "" {
		log.Ctx(ctx).Info().
			Str("role", string(out.Role)).
			Bool("degraded", out.Degraded).
			Int("tool_calls", len(out.ToolCalls)).
			Msg("chat turn answered")
	}
	return out.Reply, nil
}
