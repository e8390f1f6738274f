package response

import (
	"time"

	"github.com/shopspring/decimal"

	"auberge-espagnole/internal/data/entity"
)

type OrderResponse struct {
	ID              int64              `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	UserID          int64              `json:"userId"`
	Status          entity.OrderStatus `json:"status"`
	Total           decimal.Decimal    `json:"total"`
	Items           []entity.OrderItem `json:"items"`
	DeliveryAddress string             `json:"deliveryAddress"`
	PostalCode      string             `json:"postalCode"`
	Phone           string             `json:"phone"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type OrderOwner struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// AdminOrderResponse is an order as listed in the back-office.
type AdminOrderResponse struct {
	OrderResponse
	User OrderOwner `json:"user"`
}

type OrderCustomer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateOrderResponse is returned once, right after checkout.
type CreateOrderResponse struct {
	Order OrderResponse `json:"order"`
	User  OrderCustomer `json:"user"`
}

func OrderToResponse(order *entity.Order, items []entity.OrderItem) OrderResponse {
	if items == nil {
		items = []entity.OrderItem{}
	}
	return OrderResponse{
		ID:              order.ID,
		OrderNumber:     entity.OrderNumber(order.ID),
		UserID:          order.UserID,
		Status:          order.Status,
		Total:           order.Total,
		Items:           items,
		DeliveryAddress: order.DeliveryAddress,
		PostalCode:      order.PostalCode,
		Phone:           order.Phone,
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
	}
}
