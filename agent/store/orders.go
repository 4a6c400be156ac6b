package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// PlaceOrder resolves every requested line against the catalog and persists
// one Pending order with price snapshots. Lines are resolved in the given
// order; the first unknown name or bad quantity aborts the whole order and
// nothing is written.
func (s *Store) PlaceOrder(ctx context.Context, roomNumber string, lines []LineRequest) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var order *Order
	err := s.withSession(ctx, func(ctx context.Context, tx bun.Tx) error {
		snapshot := make([]OrderLine, 0, len(lines))
		for _, line := range lines {
			if line.Quantity <= 0 {
				return fmt.Errorf("%w: %q quantity=%d", ErrInvalidQuantity, line.Name, line.Quantity)
			}
			item, err := findMenuItem(ctx, tx, line.Name)
			if err != nil {
				return err
			}
			snapshot = append(snapshot, OrderLine{
				Name:     item.Name,
				Quantity: line.Quantity,
				Price:    item.Price,
			})
		}

		o := &Order{
			RoomNumber:  strings.TrimSpace(roomNumber),
			Items:       snapshot,
			TotalAmount: TotalOf(snapshot),
			Status:      OrderPending,
			CreatedAt:   s.now().UTC(),
		}
		if _, err := tx.NewInsert().Model(o).Exec(ctx); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := s.withSession(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&orders).Order("id ASC").Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// TotalOf sums the snapshot line totals.
func TotalOf(lines []OrderLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Total()
	}
	return total
}
