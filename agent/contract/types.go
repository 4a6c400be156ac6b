package contract

import "strings"

// Role is one of the fixed conversational desks a guest message is routed to.
type Role string

const (
	RoleReceptionist Role = "Receptionist"
	RoleRestaurant   Role = "Restaurant"
	RoleRoomService  Role = "RoomService"
)

// Roles lists every role in routing precedence order.
var Roles = []Role{RoleReceptionist, RoleRestaurant, RoleRoomService}

func (r Role) Valid() bool {
	switch r {
	case RoleReceptionist, RoleRestaurant, RoleRoomService:
		return true
	default:
		return false
	}
}

// MatchRole maps free model output onto a Role. The check is a substring
// match so verbose or quoted answers still route; anything unrecognised
// lands on the receptionist.
func MatchRole(text string) Role {
	switch {
	case strings.Contains(text, string(RoleRestaurant)):
		return RoleRestaurant
	case strings.Contains(text, string(RoleRoomService)):
		return RoleRoomService
	default:
		return RoleReceptionist
	}
}

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LatestUserText returns the content of the most recent user turn.
func LatestUserText(history []Turn) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == TurnRoleUser {
			return history[i].Content, true
		}
	}
	return "", false
}

type SpecialistRequest struct {
	UserMessage string `json:"user_message"`
}

type SpecialistResponse struct {
	Message   string           `json:"message"`
	ToolCalls []ToolInvocation `json:"tool_calls,omitempty"`
	Degraded  bool             `json:"degraded,omitempty"`
}

type ToolInvocation struct {
	Tool      string `json:"tool"`
	Arguments string `json:"arguments,omitempty"`
	Result    string `json:"result"`
}
