package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

var (
	//go:embed template/router.txt
	routerRaw string

	//go:embed template/receptionist.txt
	receptionistRaw string

	//go:embed template/restaurant.txt
	restaurantRaw string

	//go:embed template/room_service.txt
	roomServiceRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Router       string
	Receptionist string
	Restaurant   string
	RoomService  string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Router:       strings.TrimSpace(routerRaw),
		Receptionist: strings.TrimSpace(receptionistRaw),
		Restaurant:   strings.TrimSpace(restaurantRaw),
		RoomService:  strings.TrimSpace(roomServiceRaw),
	}
}

// For returns the system prompt of a desk.
func (p PromptSet) For(role contractx.Role) (string, error) {
	var out string
	switch role {
	case contractx.RoleReceptionist:
		out = p.Receptionist
	case contractx.RoleRestaurant:
		out = p.Restaurant
	case contractx.RoleRoomService:
		out = p.RoomService
	default:
		return "", fmt.Errorf("%w: role=%s", contractx.ErrPromptMissing, role)
	}
	if out == "" {
		return "", fmt.Errorf("%w: role=%s", contractx.ErrPromptMissing, role)
	}
	return out, nil
}
