package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
)

type ID string

const (
	ToolCheckRoomAvailability    ID = "check_room_availability"
	ToolGetFacilityInfo          ID = "get_facility_info"
	ToolGetMenuItems             ID = "get_menu_items"
	ToolPlaceRestaurantOrder     ID = "place_restaurant_order"
	ToolCreateRoomServiceRequest ID = "create_room_service_request"
)

// IDsForRole is the fixed capability set of each desk.
func IDsForRole(role contractx.Role) []ID {
	switch role {
	case contractx.RoleRestaurant:
		return []ID{ToolGetMenuItems, ToolPlaceRestaurantOrder}
	case contractx.RoleRoomService:
		return []ID{ToolCreateRoomServiceRequest}
	default:
		return []ID{ToolCheckRoomAvailability, ToolGetFacilityInfo}
	}
}

type Catalog interface {
	ListMenuItems(ctx context.Context) ([]storex.MenuItem, error)
}

type Ledger interface {
	PlaceOrder(ctx context.Context, roomNumber string, lines []storex.LineRequest) (*storex.Order, error)
	CreateServiceRequest(ctx context.Context, in storex.NewServiceRequest) (*storex.ServiceRequest, error)
}

// Rand is the randomness used to simulate live room inventory.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

type Deps struct {
	Catalog Catalog
	Ledger  Ledger
	Rand    Rand
}

// Handler receives the raw JSON arguments the model produced and always
// answers with text.
type Handler func(ctx context.Context, argsJSON string) string

type Tool struct {
	info    *schema.ToolInfo
	handler Handler
}

var _ einotool.InvokableTool = (*Tool)(nil)

func (t *Tool) Info(context.Context) (*schema.ToolInfo, error) {
	return t.info, nil
}

func (t *Tool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...einotool.Option) (string, error) {
	out := t.handler(ctx, argumentsInJSON)
	log.Ctx(ctx).Debug().
		Str("tool", t.info.Name).
		Str("args", argumentsInJSON).
		Str("result", out).
		Msg("tool executed")
	return out, nil
}

func (t *Tool) Name() string {
	return t.info.Name
}

type Set struct {
	tools map[ID]*Tool
}

func NewSet(deps Deps) *Set {
	if deps.Rand == nil {
		deps.Rand = globalRand{}
	}

	tools := []*Tool{
		newRoomAvailabilityTool(deps.Rand),
		newFacilityInfoTool(),
		newMenuItemsTool(deps.Catalog),
		newPlaceOrderTool(deps.Ledger),
		newServiceRequestTool(deps.Ledger),
	}

	set := &Set{tools: make(map[ID]*Tool, len(tools))}
	for _, t := range tools {
		set.tools[ID(t.info.Name)] = t
	}
	return set
}

func (s *Set) Get(id ID) (*Tool, bool) {
	t, ok := s.tools[id]
	return t, ok
}

// ForRole returns the role's tools in declaration order.
func (s *Set) ForRole(role contractx.Role) ([]einotool.InvokableTool, error) {
	ids := IDsForRole(role)
	out := make([]einotool.InvokableTool, 0, len(ids))
	for _, id := range ids {
		t, ok := s.tools[id]
		if !ok {
			return nil, fmt.Errorf("%w: tool=%s is not registered", contractx.ErrValidation, id)
		}
		out = append(out, t)
	}
	return out, nil
}

// decodeArgs weakly decodes the model's JSON arguments into out, so numbers
// sent for text fields (room 305) still land as strings.
func decodeArgs(argsJSON string, out any) error {
	raw := map[string]any{}
	if trimmed := strings.TrimSpace(argsJSON); trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
