package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
)

const (
	menuEmptyMessage = "The menu is currently empty."
	menuHeader       = "🍽️ **Resort Menu** 🍽️\n\n"
	uncategorized    = "Others"
	currencySymbol   = "₹"
)

// preferredCategories come first, in this order; anything else follows
// alphabetically.
var preferredCategories = []string{
	"Vegetarian Starter",
	"Non-Vegetarian Starter",
	"Veg Starter",
	"Non-Veg Starter",
	"Vegetarian Main Course",
	"Non-Vegetarian Main Course",
	"Veg Main Course",
	"Non-Veg Main Course",
	"Breads",
	"Desserts",
	"Drinks",
	"Miscellaneous",
}

func newMenuItemsTool(catalog Catalog) *Tool {
	return &Tool{
		info: &schema.ToolInfo{
			Name:        string(ToolGetMenuItems),
			Desc:        "List the full restaurant menu grouped by category with prices and descriptions.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		handler: func(ctx context.Context, _ string) string {
			return listMenu(ctx, catalog)
		},
	}
}

func listMenu(ctx context.Context, catalog Catalog) string {
	if catalog == nil {
		return "Failed to load menu: catalog is unavailable"
	}

	items, err := catalog.ListMenuItems(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("load menu failed")
		return fmt.Sprintf("Failed to load menu: %v", err)
	}
	return FormatMenu(items)
}

// FormatMenu renders the catalog as markdown, one section per category.
func FormatMenu(items []storex.MenuItem) string {
	if len(items) == 0 {
		return menuEmptyMessage
	}

	groups := make(map[string][]storex.MenuItem)
	for _, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = uncategorized
		}
		groups[category] = append(groups[category], item)
	}

	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sortCategories(categories)

	var b strings.Builder
	b.WriteString(menuHeader)
	for _, category := range categories {
		fmt.Fprintf(&b, "### %s\n", category)
		for _, item := range groups[category] {
			fmt.Fprintf(&b, "- **%s** (%s%s): %s\n", item.Name, currencySymbol, formatAmount(item.Price), item.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sortCategories(categories []string) {
	rank := func(category string) int {
		for i, preferred := range preferredCategories {
			if preferred == category {
				return i
			}
		}
		return len(preferredCategories)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		ri, rj := rank(categories[i]), rank(categories[j])
		if ri != rj {
			return ri < rj
		}
		return categories[i] < categories[j]
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type placeOrderArgs struct {
	RoomNumber string `json:"room_number"`
}

func newPlaceOrderTool(ledger Ledger) *Tool {
	return &Tool{
		info: &schema.ToolInfo{
			Name: string(ToolPlaceRestaurantOrder),
			Desc: "Place a food order for a guest room. Every item must be on the menu, otherwise nothing is ordered.",
			ParamsOneOf: schema.NewParamsOneOfByParams(placeOrderParams()),
		},
		handler: func(ctx context.Context, argsJSON string) string {
			return placeOrder(ctx, ledger, argsJSON)
		},
	}
}

// placeOrderParams declares items as a list of {name, quantity}. Gemini
// rejects object parameters without declared properties, so the
// name-to-quantity map is only accepted, never advertised.
func placeOrderParams() map[string]*schema.ParameterInfo {
	return map[string]*schema.ParameterInfo{
		"room_number": {Type: schema.String, Desc: "The guest's room number", Required: true},
		"items": {
			Type:     schema.Array,
			Desc:     "The dishes to order, one entry per menu item",
			Required: true,
			ElemInfo: &schema.ParameterInfo{
				Type: schema.Object,
				SubParams: map[string]*schema.ParameterInfo{
					"name":     {Type: schema.String, Desc: "Menu item name as shown on the menu", Required: true},
					"quantity": {Type: schema.Integer, Desc: "How many to order", Required: true},
				},
			},
		},
	}
}

func placeOrder(ctx context.Context, ledger Ledger, argsJSON string) string {
	if ledger == nil {
		return "Failed to place order: ledger is unavailable"
	}

	var args placeOrderArgs
	if err := decodeArgs(argsJSON, &args); err != nil {
		return fmt.Sprintf("Failed to place order: %v", err)
	}
	lines, err := parseOrderItems(argsJSON)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	order, err := ledger.PlaceOrder(ctx, args.RoomNumber, lines)
	if err != nil {
		var notFound *storex.MenuItemNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Sprintf("Error: Item '%s' is not on the menu.", notFound.Name)
		}
		log.Ctx(ctx).Error().Err(err).Str("room_number", args.RoomNumber).Msg("place order failed")
		return fmt.Sprintf("Failed to place order: %v", err)
	}

	log.Ctx(ctx).Info().
		Int64("order_id", order.ID).
		Str("room_number", order.RoomNumber).
		Float64("total_amount", order.TotalAmount).
		Msg("order placed")
	return fmt.Sprintf("Order placed successfully! Order ID: %d. Total Bill: %s%s.", order.ID, currencySymbol, formatAmount(order.TotalAmount))
}

// parseOrderItems reads "items" as a list of {name, quantity} or as a
// name-to-quantity object, keeping the order the model wrote them in so the
// first unknown item reported is the first one requested.
func parseOrderItems(argsJSON string) ([]storex.LineRequest, error) {
	var envelope struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &envelope); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	raw := bytes.TrimSpace(envelope.Items)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, errors.New("no items were given for the order")
	}

	var lines []storex.LineRequest
	switch raw[0] {
	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("invalid items: %w", err)
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("invalid items: %w", err)
			}
			name, _ := tok.(string)
			var qty any
			if err := dec.Decode(&qty); err != nil {
				return nil, fmt.Errorf("invalid quantity for '%s': %w", name, err)
			}
			line, err := newLineRequest(name, qty)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	case '[':
		var entries []struct {
			Name     string `json:"name"`
			Quantity any    `json:"quantity"`
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("invalid items: %w", err)
		}
		for _, entry := range entries {
			line, err := newLineRequest(entry.Name, entry.Quantity)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	default:
		return nil, errors.New("items must map item names to quantities")
	}

	if len(lines) == 0 {
		return nil, errors.New("no items were given for the order")
	}
	return lines, nil
}

func newLineRequest(name string, qty any) (storex.LineRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storex.LineRequest{}, errors.New("an item name is empty")
	}
	n, err := toQuantity(qty)
	if err != nil {
		return storex.LineRequest{}, fmt.Errorf("quantity for '%s' must be a positive whole number", name)
	}
	return storex.LineRequest{Name: name, Quantity: n}, nil
}

func toQuantity(v any) (int, error) {
	switch q := v.(type) {
	case bool:
		return 0, fmt.Errorf("boolean quantity %v", q)
	case float64:
		if q != math.Trunc(q) {
			return 0, fmt.Errorf("fractional quantity %v", q)
		}
	case string:
		// cast parses with base 0, which reads "010" as octal.
		d, err := strconv.ParseInt(strings.TrimSpace(q), 10, 0)
		if err != nil {
			return 0, err
		}
		v = d
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, storex.ErrInvalidQuantity
	}
	return n, nil
}
