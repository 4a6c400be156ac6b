package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
	toolx "github.com/tanpawarit/Resort-Concierge-Agents/agent/tool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newSeedStore(t *testing.T) *storex.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	st, err := storex.New(db)
	if err != nil {
		t.Fatalf("storex.New() error = %v", err)
	}
	return st
}

func seedDefaults(t *testing.T, ctx context.Context, st *storex.Store) int {
	t.Helper()
	total := 0
	for _, batch := range defaultBatches {
		added, err := seedMenu(ctx, st, batch.items)
		if err != nil {
			t.Fatalf("seedMenu(%s) error = %v", batch.name, err)
		}
		total += added
	}
	return total
}

func TestDefaultMenuNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, batch := range defaultBatches {
		for _, item := range batch.items {
			key := strings.ToLower(item.Name)
			if seen[key] {
				t.Fatalf("duplicate menu item %q", item.Name)
			}
			seen[key] = true
		}
	}
	if len(seen) != 44 {
		t.Fatalf("default menu has %d items, want 44", len(seen))
	}
}

func TestSeedMenuIsIdempotent(t *testing.T) {
	st := newSeedStore(t)
	ctx := context.Background()

	if added := seedDefaults(t, ctx, st); added != 44 {
		t.Fatalf("first run added %d, want 44", added)
	}
	if added := seedDefaults(t, ctx, st); added != 0 {
		t.Fatalf("second run added %d, want 0", added)
	}

	again := []storex.MenuItem{
		{Name: "masala dosa", Price: 1, Category: "Breakfast"},
		{Name: "Filter Coffee", Price: 40, Category: "Drinks"},
	}
	added, err := seedMenu(ctx, st, again)
	if err != nil {
		t.Fatalf("seedMenu() error = %v", err)
	}
	if added != 1 {
		t.Fatalf("case-insensitive run added %d, want 1", added)
	}

	items, err := st.ListMenuItems(ctx)
	if err != nil {
		t.Fatalf("ListMenuItems() error = %v", err)
	}
	if len(items) != 45 {
		t.Fatalf("unexpected menu size %d", len(items))
	}
	if items[0].Name != "Masala Dosa" || items[0].Price != 120 {
		t.Fatalf("first item changed: %+v", items[0])
	}
}

func TestSeededMenuCategoryOrder(t *testing.T) {
	st := newSeedStore(t)
	ctx := context.Background()
	seedDefaults(t, ctx, st)

	items, err := st.ListMenuItems(ctx)
	if err != nil {
		t.Fatalf("ListMenuItems() error = %v", err)
	}
	menu := toolx.FormatMenu(items)

	var headers []string
	for _, line := range strings.Split(menu, "\n") {
		if h, ok := strings.CutPrefix(line, "### "); ok {
			headers = append(headers, h)
		}
	}
	want := []string{
		"Veg Starter",
		"Non-Veg Starter",
		"Veg Main Course",
		"Non-Veg Main Course",
		"Breads",
		"Desserts",
		"Drinks",
		"Miscellaneous",
		"Breakfast",
	}
	if strings.Join(headers, "|") != strings.Join(want, "|") {
		t.Fatalf("category order = %v, want %v", headers, want)
	}
	if !strings.Contains(menu, "- **Butter Chicken** (₹380): Chicken in creamy tomato sauce") {
		t.Fatalf("menu misses seeded item:\n%s", menu)
	}
}
