// Command seed creates the resort tables and loads the default menu. Items
// whose name already exists are skipped, so it is safe to run repeatedly.
package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
	configx "github.com/tanpawarit/Resort-Concierge-Agents/pkg/config"
	_ "github.com/tanpawarit/Resort-Concierge-Agents/pkg/logger/autoload"
)

var breakfastMenu = []storex.MenuItem{
	{Name: "Masala Dosa", Description: "Crispy dosa with spiced potato filling", Price: 120, Category: "Breakfast"},
	{Name: "Plain Idli", Description: "Steamed rice cakes with chutney", Price: 80, Category: "Breakfast"},
	{Name: "Medu Vada", Description: "Fried lentil doughnuts", Price: 90, Category: "Breakfast"},
	{Name: "Upma", Description: "Semolina cooked with vegetables", Price: 100, Category: "Breakfast"},
	{Name: "Poha", Description: "Flattened rice with peanuts", Price: 100, Category: "Breakfast"},
	{Name: "Aloo Paratha", Description: "Stuffed paratha with curd", Price: 130, Category: "Breakfast"},
	{Name: "Paneer Paratha", Description: "Paneer stuffed paratha", Price: 150, Category: "Breakfast"},
	{Name: "Puri Bhaji", Description: "Fried bread with potato curry", Price: 140, Category: "Breakfast"},
	{Name: "Omelette", Description: "Indian-style omelette", Price: 90, Category: "Breakfast"},
	{Name: "Boiled Eggs", Description: "Two boiled eggs", Price: 70, Category: "Breakfast"},
}

var kitchenMenu = []storex.MenuItem{
	{Name: "Paneer Tikka", Description: "Grilled cottage cheese with spices", Price: 240, Category: "Veg Starter"},
	{Name: "Veg Manchurian", Description: "Vegetable balls in spicy sauce", Price: 200, Category: "Veg Starter"},
	{Name: "Crispy Corn", Description: "Fried corn kernels with pepper", Price: 180, Category: "Veg Starter"},

	{Name: "Chicken Tikka", Description: "Tandoori grilled chicken chunks", Price: 320, Category: "Non-Veg Starter"},
	{Name: "Chilli Chicken", Description: "Spicy fried chicken with bell peppers", Price: 300, Category: "Non-Veg Starter"},
	{Name: "Fish Fry", Description: "Crispy fried fish fillet", Price: 350, Category: "Non-Veg Starter"},

	{Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato gravy", Price: 300, Category: "Veg Main Course"},
	{Name: "Dal Makhani", Description: "Creamy black lentils slow cooked", Price: 250, Category: "Veg Main Course"},
	{Name: "Veg Biryani", Description: "Aromatic rice with mixed vegetables", Price: 280, Category: "Veg Main Course"},

	{Name: "Butter Chicken", Description: "Chicken in creamy tomato sauce", Price: 380, Category: "Non-Veg Main Course"},
	{Name: "Mutton Rogan Josh", Description: "Kashmiri style mutton curry", Price: 450, Category: "Non-Veg Main Course"},
	{Name: "Chicken Biryani", Description: "Fragrant rice layered with spiced chicken", Price: 350, Category: "Non-Veg Main Course"},

	{Name: "Gulab Jamun", Description: "Fried milk dumplings in sugar syrup", Price: 120, Category: "Desserts"},
	{Name: "Rasmalai", Description: "Soft paneer patties in sweetened milk", Price: 150, Category: "Desserts"},
	{Name: "Vanilla Ice Cream", Description: "Classic vanilla scoop", Price: 100, Category: "Desserts"},
	{Name: "Chocolate Brownie", Description: "Warm brownie with chocolate sauce", Price: 180, Category: "Desserts"},
}

var sidesMenu = []storex.MenuItem{
	{Name: "Tandoori Roti", Description: "Whole wheat flatbread cooked in clay oven", Price: 40, Category: "Breads"},
	{Name: "Butter Naan", Description: "Soft leavened bread topped with butter", Price: 60, Category: "Breads"},
	{Name: "Garlic Naan", Description: "Naan infused with fresh garlic", Price: 70, Category: "Breads"},
	{Name: "Cheese Kulcha", Description: "Stuffed bread with cheese filling", Price: 90, Category: "Breads"},
	{Name: "Lachha Paratha", Description: "Layered whole wheat bread", Price: 65, Category: "Breads"},

	{Name: "Mineral Water", Description: "1L bottled water", Price: 30, Category: "Drinks"},
	{Name: "Fresh Lime Soda", Description: "Refreshing lime drink (Sweet/Salted)", Price: 80, Category: "Drinks"},
	{Name: "Sweet Lassi", Description: "Traditional yogurt drink", Price: 90, Category: "Drinks"},
	{Name: "Masala Chai", Description: "Indian spiced tea", Price: 40, Category: "Drinks"},
	{Name: "Cold Coffee", Description: "Chilled coffee with vanilla ice cream", Price: 120, Category: "Drinks"},
	{Name: "Soft Drink", Description: "Coke/Sprite/Fanta (300ml)", Price: 50, Category: "Drinks"},

	{Name: "Green Salad", Description: "Sliced cucumber, tomato, carrot, onion", Price: 80, Category: "Miscellaneous"},
	{Name: "Masala Papad", Description: "Roasted papad topped with spicy salad", Price: 50, Category: "Miscellaneous"},
	{Name: "Boondi Raita", Description: "Yogurt with fried gram flour pearls", Price: 90, Category: "Miscellaneous"},
	{Name: "Plain Curd", Description: "Fresh plain yogurt", Price: 60, Category: "Miscellaneous"},
	{Name: "Pickle", Description: "Assorted Indian pickle", Price: 20, Category: "Miscellaneous"},
}

type menuBatch struct {
	name  string
	items []storex.MenuItem
}

var defaultBatches = []menuBatch{
	{name: "breakfast", items: breakfastMenu},
	{name: "kitchen", items: kitchenMenu},
	{name: "sides", items: sidesMenu},
}

type menuWriter interface {
	CreateSchema(ctx context.Context) error
	AddMenuItemIfAbsent(ctx context.Context, item storex.MenuItem) (bool, error)
}

func seedMenu(ctx context.Context, st menuWriter, items []storex.MenuItem) (int, error) {
	if err := st.CreateSchema(ctx); err != nil {
		return 0, fmt.Errorf("create schema: %w", err)
	}

	added := 0
	for _, item := range items {
		ok, err := st.AddMenuItemIfAbsent(ctx, item)
		if err != nil {
			return added, fmt.Errorf("add %q: %w", item.Name, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}

func main() {
	ctx := context.Background()

	dbCfg := configx.MustNew[storex.Config]("DB")
	db := storex.MustOpen(*dbCfg)
	defer db.Close()

	st, err := storex.New(db)
	if err != nil {
		log.Fatal().Err(err).Msg("init store")
	}

	for _, batch := range defaultBatches {
		added, err := seedMenu(ctx, st, batch.items)
		if err != nil {
			log.Fatal().Err(err).Str("batch", batch.name).Msg("seed menu")
		}
		log.Info().
			Str("batch", batch.name).
			Int("added", added).
			Int("skipped", len(batch.items)-added).
			Msg("menu batch seeded")
	}
}
