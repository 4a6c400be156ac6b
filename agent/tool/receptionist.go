package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var roomBasePrices = map[string]int{
	"deluxe":   200,
	"suite":    500,
	"standard": 100,
}

const (
	priceJitterMin = -20
	priceJitterMax = 50
)

// normalizeRoomType folds free text onto a known room key.
func normalizeRoomType(roomType string) string {
	req := strings.ToLower(strings.TrimSpace(roomType))
	switch {
	case strings.Contains(req, "suite"):
		return "suite"
	case strings.Contains(req, "deluxe"):
		return "deluxe"
	default:
		return "standard"
	}
}

type roomAvailabilityArgs struct {
	RoomType string `json:"room_type"`
}

func newRoomAvailabilityTool(rng Rand) *Tool {
	return &Tool{
		info: &schema.ToolInfo{
			Name: string(ToolCheckRoomAvailability),
			Desc: "Check whether rooms of a type are available tonight and quote the current nightly rate.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"room_type": {Type: schema.String, Desc: "Room type such as Deluxe, Suite or Standard. Optional."},
			}),
		},
		handler: func(ctx context.Context, argsJSON string) string {
			var args roomAvailabilityArgs
			if err := decodeArgs(argsJSON, &args); err != nil {
				args = roomAvailabilityArgs{}
			}
			return checkRoomAvailability(rng, args.RoomType)
		},
	}
}

// checkRoomAvailability simulates live inventory: two draws in three are
// available and the rate moves within [base-20, base+50].
func checkRoomAvailability(rng Rand, roomType string) string {
	key := normalizeRoomType(roomType)
	label := cases.Title(language.English).String(key)

	if rng.Intn(3) == 2 {
		return fmt.Sprintf("I'm sorry, but our %s rooms are currently fully booked. Would you like to check another room type?", label)
	}

	price := roomBasePrices[key] + priceJitterMin + rng.Intn(priceJitterMax-priceJitterMin+1)
	return fmt.Sprintf("Yes, we have %s rooms available. The current rate is $%d per night.", label, price)
}

const facilityFallback = "I can answer questions about the Gym, Spa, Pool, Restaurant, Check-in/out times, Wi-Fi, and Parking."

var facilities = map[string]string{
	"gym":        "The Gym is open from 6 AM to 10 PM. It is located on the 2nd floor.",
	"spa":        "The Spa offers massages and treatments from 10 AM to 8 PM. Booking is required at extension 101.",
	"pool":       "The Swimming Pool is open from 7 AM to 9 PM. Please wear appropriate swimwear.",
	"restaurant": "The Restaurant serves breakfast (7-10 AM), lunch (12-3 PM), and dinner (7-11 PM).",
	"checkin":    "Check-in time is 2:00 PM.",
	"checkout":   "Check-out time is 11:00 AM.",
	"wifi":       "Free high-speed Wi-Fi is available throughout the resort. Network: 'ResortGuest', Password: 'relaxandenjoy'.",
	"parking":    "Valet parking is complimentary for all guests.",
}

// lookupFacility is a lenient substring match; the first rule that fits wins.
func lookupFacility(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	compact := strings.NewReplacer("-", "", " ", "", "_", "").Replace(key)

	switch {
	case strings.Contains(compact, "check") && strings.Contains(compact, "in"):
		return facilities["checkin"]
	case strings.Contains(compact, "check") && strings.Contains(compact, "out"):
		return facilities["checkout"]
	case strings.Contains(compact, "wifi"):
		return facilities["wifi"]
	case strings.Contains(compact, "park"):
		return facilities["parking"]
	case strings.Contains(compact, "gym"):
		return facilities["gym"]
	case strings.Contains(compact, "spa"):
		return facilities["spa"]
	case strings.Contains(compact, "pool"):
		return facilities["pool"]
	case strings.Contains(compact, "restaurant"):
		return facilities["restaurant"]
	default:
		return facilityFallback
	}
}

type facilityInfoArgs struct {
	FacilityName string `json:"facility_name"`
}

func newFacilityInfoTool() *Tool {
	return &Tool{
		info: &schema.ToolInfo{
			Name: string(ToolGetFacilityInfo),
			Desc: "Get opening hours and details for a resort facility: gym, spa, pool, restaurant, check-in, check-out, wifi or parking.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"facility_name": {Type: schema.String, Desc: "Facility or topic, e.g. \"spa\" or \"check-in\"", Required: true},
			}),
		},
		handler: func(ctx context.Context, argsJSON string) string {
			var args facilityInfoArgs
			if err := decodeArgs(argsJSON, &args); err != nil {
				return facilityFallback
			}
			return lookupFacility(args.FacilityName)
		},
	}
}
