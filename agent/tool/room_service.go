package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
)

type serviceRequestArgs struct {
	RoomNumber  string `json:"room_number"`
	RequestType string `json:"request_type"`
	Details     string `json:"details"`
}

func newServiceRequestTool(ledger Ledger) *Tool {
	return &Tool{
		info: &schema.ToolInfo{
			Name: string(ToolCreateRoomServiceRequest),
			Desc: "Create a housekeeping or amenities request (cleaning, laundry, towels, toiletries, repairs) for a guest room.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"room_number":  {Type: schema.String, Desc: "The guest's room number", Required: true},
				"request_type": {Type: schema.String, Desc: "Kind of request, e.g. Cleaning, Towel, Laundry, Repair", Required: true},
				"details":      {Type: schema.String, Desc: "Anything staff should know. Optional."},
			}),
		},
		handler: func(ctx context.Context, argsJSON string) string {
			return createServiceRequest(ctx, ledger, argsJSON)
		},
	}
}

func createServiceRequest(ctx context.Context, ledger Ledger, argsJSON string) string {
	if ledger == nil {
		return "Failed to create request: ledger is unavailable"
	}

	var args serviceRequestArgs
	if err := decodeArgs(argsJSON, &args); err != nil {
		return fmt.Sprintf("Failed to create request: %v", err)
	}

	req, err := ledger.CreateServiceRequest(ctx, storex.NewServiceRequest{
		RoomNumber:  args.RoomNumber,
		RequestType: args.RequestType,
		Details:     args.Details,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("room_number", args.RoomNumber).Msg("create service request failed")
		return fmt.Sprintf("Failed to create request: %v", err)
	}

	log.Ctx(ctx).Info().
		Int64("request_id", req.ID).
		Str("room_number", req.RoomNumber).
		Str("request_type", req.RequestType).
		Msg("service request created")
	return fmt.Sprintf("Service request created. Request ID: %d. We will attend to it shortly.", req.ID)
}
