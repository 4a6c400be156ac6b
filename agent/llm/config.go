package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
	openrouterx "github.com/tanpawarit/Resort-Concierge-Agents/pkg/openrouter"
)

// Stage selects which model settings apply. The router has its own stage so
// classification can run on a cheaper model than the desks.
type Stage string

const StageRouter Stage = "Router"

// StageFor maps a desk onto its model stage.
func StageFor(role contractx.Role) Stage {
	return Stage(role)
}

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"google/gemini-2.0-flash-001"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`
	MaxToolRounds      int           `envconfig:"MAX_TOOL_ROUNDS" split_words:"true" default:"10"`

	RouterModel             string  `envconfig:"ROUTER_MODEL" split_words:"true"`
	ReceptionistModel       string  `envconfig:"RECEPTIONIST_MODEL" split_words:"true"`
	RestaurantModel         string  `envconfig:"RESTAURANT_MODEL" split_words:"true"`
	RoomServiceModel        string  `envconfig:"ROOM_SERVICE_MODEL" split_words:"true"`
	RouterTemperature       float32 `envconfig:"ROUTER_TEMPERATURE" split_words:"true" default:"0"`
	ReceptionistTemperature float32 `envconfig:"RECEPTIONIST_TEMPERATURE" split_words:"true" default:"-1"`
	RestaurantTemperature   float32 `envconfig:"RESTAURANT_TEMPERATURE" split_words:"true" default:"-1"`
	RoomServiceTemperature  float32 `envconfig:"ROOM_SERVICE_TEMPERATURE" split_words:"true" default:"-1"`
}

// Validate rejects settings the agents cannot be built with. A missing API
// key is not one of them; see HasAPIKey.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	if c.MaxToolRounds <= 0 {
		return fmt.Errorf("%w: max tool rounds must be positive, got %d", contractx.ErrValidation, c.MaxToolRounds)
	}
	return nil
}

// HasAPIKey reports whether model calls can authenticate at all.
func (c Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func (c Config) OpenRouterFor(stage Stage) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	override := func(m string, t float32) {
		if v := strings.TrimSpace(m); v != "" {
			modelName = v
		}
		if t >= 0 {
			temp = t
		}
	}

	switch stage {
	case StageRouter:
		override(c.RouterModel, c.RouterTemperature)
	case StageFor(contractx.RoleReceptionist):
		override(c.ReceptionistModel, c.ReceptionistTemperature)
	case StageFor(contractx.RoleRestaurant):
		override(c.RestaurantModel, c.RestaurantTemperature)
	case StageFor(contractx.RoleRoomService):
		override(c.RoomServiceModel, c.RoomServiceTemperature)
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
