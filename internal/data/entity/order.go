package entity

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the recognised order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

const OrderNumberPrefix = "AE-"

// OrderNumber renders the customer-facing reference, e.g. 42 -> AE-000042.
func OrderNumber(id int64) string {
	return fmt.Sprintf("%s%06d", OrderNumberPrefix, id)
}

// OrderItem is one line of the frozen cart snapshot stored with an order.
type OrderItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Category string          `json:"category"`
}

type Order struct {
	Base
	UserID          int64           `db:"user_id"`
	Status          OrderStatus     `db:"status"`
	Total           decimal.Decimal `db:"total"`
	Items           string          `db:"items"` // JSON snapshot, see EncodeItems
	DeliveryAddress string          `db:"delivery_address"`
	PostalCode      string          `db:"postal_code"`
	Phone           string          `db:"phone"`
	Notes           string          `db:"notes"`
}

// OrderWithUser is an order joined with its owner's identity (admin listing).
type OrderWithUser struct {
	Order
	UserEmail     string  `db:"email"`
	UserFirstName *string `db:"first_name"`
	UserLastName  *string `db:"last_name"`
}

func EncodeItems(items []OrderItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode order items: %w", err)
	}
	return string(b), nil
}

func DecodeItems(raw string) ([]OrderItem, error) {
	var items []OrderItem
	if raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return items, nil
}
