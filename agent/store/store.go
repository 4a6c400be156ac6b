package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	ErrNilDB            = errors.New("database handle is nil")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrEmptyOrder       = errors.New("order has no items")
)

type Config struct {
	DSN          string        `envconfig:"DSN" split_words:"true" required:"true"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" split_words:"true" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" split_words:"true" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" split_words:"true" default:"10s"`
	AutoMigrate  bool          `envconfig:"AUTO_MIGRATE" split_words:"true" default:"true"`
}

// Open connects to PostgreSQL through bun's pgdriver.
func Open(cfg Config) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("database dsn is required")
	}

	connector := pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithDialTimeout(cfg.DialTimeout),
		pgdriver.WithReadTimeout(cfg.ReadTimeout),
		pgdriver.WithWriteTimeout(cfg.WriteTimeout),
	)
	return bun.NewDB(sql.OpenDB(connector), pgdialect.New()), nil
}

func MustOpen(cfg Config) *bun.DB {
	db, err := Open(cfg)
	if err != nil {
		panic(err)
	}
	return db
}

// Store owns the catalog and both ledgers. Every method acquires its own
// transaction and releases it before returning.
type Store struct {
	db  *bun.DB
	now func() time.Time
}

func New(db *bun.DB) (*Store, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) DB() *bun.DB {
	return s.db
}

// CreateSchema creates the three tables when they do not exist yet.
func (s *Store) CreateSchema(ctx context.Context) error {
	models := []any{
		(*MenuItem)(nil),
		(*Order)(nil),
		(*ServiceRequest)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

// withSession runs fn inside one commit-or-rollback unit. The transaction
// is rolled back on error or panic and committed otherwise.
func (s *Store) withSession(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	if s == nil || s.db == nil {
		return ErrNilDB
	}
	return s.db.RunInTx(ctx, nil, fn)
}
