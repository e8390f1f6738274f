package adaptor

import (
	"net/http"

	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/usecase"
	"auberge-espagnole/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/orders/create
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgAuthRequired)
		return
	}

	var req request.CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Commande créée avec succès", order)
}

// GetUserOrders handles GET /api/orders/user
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgAuthRequired)
		return
	}

	orders, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user orders")
		return
	}

	utils.ResponseSuccess(w, "Commandes récupérées", orders)
}

// GetAllOrders handles GET /api/orders/all (admin only)
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all orders")
		return
	}

	utils.ResponseSuccess(w, "Commandes récupérées", orders)
}

// UpdateStatus handles PUT /api/orders/{id}/status (admin only)
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r)
	if !ok {
		utils.ResponseBadRequest(w, msgInvalidID, nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		h.handleServiceError(w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Statut mis à jour", order)
}

func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	logServiceError(h.log, err, operation)
	utils.ResponseError(w, err, msgServerError)
}
