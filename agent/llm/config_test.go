package llm

import (
	"errors"
	"testing"

	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
)

func baseConfig() Config {
	return Config{
		Model:                   "default/model",
		Temperature:             0.5,
		MaxCompletionToken:      2000,
		MaxToolRounds:           10,
		ReceptionistTemperature: -1,
		RestaurantTemperature:   -1,
		RoomServiceTemperature:  -1,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() without api key should pass, got %v", err)
	}
	if cfg.HasAPIKey() {
		t.Fatal("HasAPIKey() = true, want false")
	}

	cfg.Model = " "
	if err := cfg.Validate(); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty model, got %v", err)
	}

	cfg = baseConfig()
	cfg.MaxToolRounds = 0
	if err := cfg.Validate(); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation for zero rounds, got %v", err)
	}
}

func TestOpenRouterForOverrides(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.APIKey = " key "
	cfg.RouterModel = "cheap/router"
	cfg.RouterTemperature = 0
	cfg.RestaurantModel = "menu/model"
	cfg.RestaurantTemperature = 0.2

	router := cfg.OpenRouterFor(StageRouter)
	if router.Model != "cheap/router" || router.Temperature != 0 {
		t.Fatalf("unexpected router config: %+v", router)
	}
	if router.APIKey != "key" {
		t.Fatalf("api key not trimmed: %q", router.APIKey)
	}

	restaurant := cfg.OpenRouterFor(StageFor(contractx.RoleRestaurant))
	if restaurant.Model != "menu/model" || restaurant.Temperature != 0.2 {
		t.Fatalf("unexpected restaurant config: %+v", restaurant)
	}

	reception := cfg.OpenRouterFor(StageFor(contractx.RoleReceptionist))
	if reception.Model != "default/model" || reception.Temperature != 0.5 {
		t.Fatalf("receptionist should inherit defaults: %+v", reception)
	}
	if reception.MaxCompletionToken == nil || *reception.MaxCompletionToken != 2000 {
		t.Fatalf("unexpected max tokens: %v", reception.MaxCompletionToken)
	}
}
