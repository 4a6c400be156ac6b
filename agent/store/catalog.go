package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

func (s *Store) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	err := s.withSession(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&items).Order("id ASC").Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (s *Store) FindMenuItem(ctx context.Context, name string) (*MenuItem, error) {
	var item *MenuItem
	err := s.withSession(ctx, func(ctx context.Context, tx bun.Tx) error {
		found, err := findMenuItem(ctx, tx, name)
		item = found
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AddMenuItemIfAbsent inserts item unless a row with the same name, ignoring
// case, already exists. The check and the insert are not atomic across
// sessions.
func (s *Store) AddMenuItemIfAbsent(ctx context.Context, item MenuItem) (bool, error) {
	name := strings.TrimSpace(item.Name)
	if name == "" {
		return false, errors.New("menu item name is required")
	}
	if item.Price <= 0 {
		return false, fmt.Errorf("menu item %q: price must be positive", name)
	}

	added := false
	err := s.withSession(ctx, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().Model((*MenuItem)(nil)).Where("lower(trim(name)) = lower(?)", name).Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		item.ID = 0
		item.Name = name
		if _, err := tx.NewInsert().Model(&item).Exec(ctx); err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("add menu item %q: %w", name, err)
	}
	return added, nil
}

// findMenuItem matches on the case-folded, trimmed name.
func findMenuItem(ctx context.Context, db bun.IDB, name string) (*MenuItem, error) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return nil, &MenuItemNotFoundError{Name: name}
	}

	item := new(MenuItem)
	err := db.NewSelect().
		Model(item).
		Where("lower(trim(name)) = lower(?)", needle).
		Order("id ASC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &MenuItemNotFoundError{Name: name}
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// MenuItemNotFoundError carries the name exactly as the guest requested it.
type MenuItemNotFoundError struct {
	Name string
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMenuItemNotFound, e.Name)
}

func (e *MenuItemNotFoundError) Unwrap() error {
	return ErrMenuItemNotFound
}
