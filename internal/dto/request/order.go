package request

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total           decimal.Decimal    `json:"total"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	PostalCode      string             `json:"postalCode" validate:"required"`
	Phone           string             `json:"phone" validate:"required"`
	Notes           string             `json:"notes"`
}

// OrderItemRequest is one cart line as the storefront sends it.
type OrderItemRequest struct {
	ID       int64           `json:"id" validate:"required,gt=0"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Category CategoryLabel   `json:"category"`
}

// CategoryLabel accepts either a plain name or a category object
// ({"id": 1, "name": "..."}), which is what product listings carry.
type CategoryLabel string

func (c *CategoryLabel) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*c = ""
		return nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*c = CategoryLabel(obj.Name)
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*c = CategoryLabel(name)
	return nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
