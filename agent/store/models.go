package store

import (
	"time"

	"github.com/uptrace/bun"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderDelivered OrderStatus = "Delivered"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "Pending"
	RequestInProgress RequestStatus = "In Progress"
	RequestCompleted  RequestStatus = "Completed"
)

// MenuItem is one orderable catalog row. Name uniqueness is checked on
// insert, not enforced by the schema.
type MenuItem struct {
	bun.BaseModel `bun:"table:menu_items,alias:m"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	Name        string  `bun:"name,notnull" json:"name"`
	Description string  `bun:"description" json:"description"`
	Price       float64 `bun:"price,notnull" json:"price"`
	Category    string  `bun:"category" json:"category"`
}

// OrderLine is a snapshot of a menu item at order time.
type OrderLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (l OrderLine) Total() float64 {
	return l.Price * float64(l.Quantity)
}

type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID          int64       `bun:"id,pk,autoincrement" json:"id"`
	RoomNumber  string      `bun:"room_number,notnull" json:"room_number"`
	Items       []OrderLine `bun:"items,type:jsonb" json:"items"`
	TotalAmount float64     `bun:"total_amount,notnull" json:"total_amount"`
	Status      OrderStatus `bun:"status,notnull,default:'Pending'" json:"status"`
	CreatedAt   time.Time   `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

type ServiceRequest struct {
	bun.BaseModel `bun:"table:service_requests,alias:sr"`

	ID          int64         `bun:"id,pk,autoincrement" json:"id"`
	RoomNumber  string        `bun:"room_number,notnull" json:"room_number"`
	RequestType string        `bun:"request_type,notnull" json:"request_type"`
	Details     string        `bun:"details" json:"details"`
	Status      RequestStatus `bun:"status,notnull,default:'Pending'" json:"status"`
	CreatedAt   time.Time     `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// LineRequest is one requested (name, quantity) pair before catalog lookup.
type LineRequest struct {
	Name     string
	Quantity int
}

type NewServiceRequest struct {
	RoomNumber  string
	RequestType string
	Details     string
}
