package entity

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseNoDelete
	Name         string          `db:"name"`
	Description  *string         `db:"description"`
	Price        decimal.Decimal `db:"price"`
	Stock        int             `db:"stock"`
	Image        *string         `db:"image"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"` // joined, read-only
}
