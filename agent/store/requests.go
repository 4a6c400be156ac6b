package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

func (s *Store) CreateServiceRequest(ctx context.Context, in NewServiceRequest) (*ServiceRequest, error) {
	requestType := strings.TrimSpace(in.RequestType)
	if requestType == "" {
		return nil, errors.New("request type is required")
	}

	req := &ServiceRequest{
		RoomNumber:  strings.TrimSpace(in.RoomNumber),
		RequestType: requestType,
		Details:     strings.TrimSpace(in.Details),
		Status:      RequestPending,
		CreatedAt:   s.now().UTC(),
	}
	err := s.withSession(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(req).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("insert service request: %w", err)
	}
	return req, nil
}

func (s *Store) ListServiceRequests(ctx context.Context) ([]ServiceRequest, error) {
	var requests []ServiceRequest
	err := s.withSession(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&requests).Order("id ASC").Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	if requests == nil {
		requests = []ServiceRequest{}
	}
	return requests, nil
}
