package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	nodex "github.com/tanpawarit/Resort-Concierge-Agents/agent/nodes"
)

func (o *Orchestrator) compileChatGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode(nodex.NodeExtractLatestTurn,
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ExtractLatestTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeExtractLatestTurn, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeCannedReply,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.CannedReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeCannedReply, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeClassifyIntent,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ClassifyIntent(ctx, in, o.models.Router())
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeClassifyIntent, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeDispatchSpecialist,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.DispatchSpecialist(ctx, in, o.models)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeDispatchSpecialist, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeFinalizeReply,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeFinalizeReply, err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			return nodex.NextAfterExtract(in)
		},
		map[string]bool{
			nodex.NodeCannedReply:    true,
			nodex.NodeClassifyIntent: true,
		},
	)
	if err := graph.AddBranch(nodex.NodeExtractLatestTurn, branch); err != nil {
		return nil, fmt.Errorf("add branch after %s: %w", nodex.NodeExtractLatestTurn, err)
	}

	edges := [][2]string{
		{compose.START, nodex.NodeExtractLatestTurn},
		{nodex.NodeClassifyIntent, nodex.NodeDispatchSpecialist},
		{nodex.NodeDispatchSpecialist, nodex.NodeFinalizeReply},
		{nodex.NodeFinalizeReply, compose.END},
		{nodex.NodeCannedReply, compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.chat"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}
