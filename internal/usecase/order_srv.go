package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/dto/response"
	"auberge-espagnole/pkg/utils"
)

const (
	msgEmptyCart           = "Le panier est vide"
	msgMissingDelivery     = "Informations de livraison manquantes"
	msgPostalNotEligible   = "Ce code postal n'est pas éligible à la livraison"
	msgInvalidStatus       = "Statut invalide"
	msgOrderNotFound       = "Commande non trouvée"
	msgOrderCreateFailed   = "Erreur lors de la création de la commande"
	msgOrderListFailed     = "Erreur lors de la récupération des commandes"
	msgOrderStatusFailed   = "Erreur lors de la mise à jour du statut"
	msgInvalidOrderContent = "Contenu de la commande invalide"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error)
	ListForUser(ctx context.Context, userID int64) ([]response.OrderResponse, error)
	ListAll(ctx context.Context) ([]response.AdminOrderResponse, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (*response.OrderResponse, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	delivery  utils.DeliveryConfig
	log       *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	delivery utils.DeliveryConfig,
	log *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		delivery:  delivery,
		log:       log.With(zap.String("service", "order")),
	}
}

// CreateOrder freezes the submitted cart into a new pending order owned by
// userID. The stored items never change afterwards, whatever happens to the
// products they were taken from.
func (s *orderService) CreateOrder(ctx context.Context, userID int64, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error) {
	// 1. Validate cart and delivery details
	if len(req.Items) == 0 {
		return nil, utils.NewValidationError(msgEmptyCart)
	}

	req.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	req.PostalCode = strings.TrimSpace(req.PostalCode)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.DeliveryAddress == "" || req.PostalCode == "" || req.Phone == "" {
		return nil, utils.NewValidationError(msgMissingDelivery)
	}

	if s.delivery.Enforce && !IsDeliveryEligible(req.PostalCode) {
		s.log.Warn("Order rejected, postal code outside delivery zone",
			zap.Int64("user_id", userID),
			zap.String("postal_code", req.PostalCode))
		return nil, utils.NewValidationError(msgPostalNotEligible)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, utils.NewFieldValidationError(msgInvalidOrderContent, errs)
	}
	if req.Total.IsNegative() {
		return nil, utils.NewValidationError(msgInvalidOrderContent)
	}

	// 2. Normalise lines through a cart, merging repeated products
	cart := entity.NewCart()
	for _, item := range req.Items {
		if item.Price.IsNegative() {
			return nil, utils.NewValidationError(msgInvalidOrderContent)
		}
		err := cart.Add(entity.CartProduct{
			ID:       item.ID,
			Name:     strings.TrimSpace(item.Name),
			Price:    item.Price,
			Category: string(item.Category),
		}, item.Quantity)
		if err != nil {
			return nil, utils.NewValidationError(msgInvalidOrderContent)
		}
	}

	total := req.Total
	if total.IsZero() {
		total = cart.Total()
	} else if !total.Equal(cart.Total()) {
		// the submitted total is what the customer agreed to pay
		s.log.Warn("Order total differs from cart lines",
			zap.Int64("user_id", userID),
			zap.String("submitted", total.String()),
			zap.String("computed", cart.Total().String()))
	}

	// 3. Owner must exist
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError(msgOrderCreateFailed, err)
	}
	if user == nil {
		return nil, utils.NewAuthError(msgUserNotFound)
	}

	// 4. Persist snapshot
	items := cart.Snapshot()
	encoded, err := entity.EncodeItems(items)
	if err != nil {
		return nil, utils.NewInternalError(msgOrderCreateFailed, err)
	}

	order := &entity.Order{
		UserID:          userID,
		Status:          entity.OrderStatusPending,
		Total:           total,
		Items:           encoded,
		DeliveryAddress: req.DeliveryAddress,
		PostalCode:      req.PostalCode,
		Phone:           req.Phone,
		Notes:           strings.TrimSpace(req.Notes),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.Int64("user_id", userID))
		return nil, utils.NewInternalError(msgOrderCreateFailed, err)
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", entity.OrderNumber(order.ID)),
		zap.Int64("user_id", userID),
		zap.Int("lines", len(items)),
		zap.String("total", total.String()),
	)

	return &response.CreateOrderResponse{
		Order: response.OrderToResponse(order, items),
		User: response.OrderCustomer{
			Email: user.Email,
			Name:  user.DisplayName(),
		},
	}, nil
}

func (s *orderService) ListForUser(ctx context.Context, userID int64) ([]response.OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError(msgOrderListFailed, err)
	}

	result := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, response.OrderToResponse(order, s.decodeItems(order)))
	}
	return result, nil
}

func (s *orderService) ListAll(ctx context.Context) ([]response.AdminOrderResponse, error) {
	orders, err := s.orderRepo.FindAllWithUser(ctx)
	if err != nil {
		return nil, utils.NewInternalError(msgOrderListFailed, err)
	}

	result := make([]response.AdminOrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, response.AdminOrderResponse{
			OrderResponse: response.OrderToResponse(&order.Order, s.decodeItems(&order.Order)),
			User: response.OrderOwner{
				Email:     order.UserEmail,
				FirstName: order.UserFirstName,
				LastName:  order.UserLastName,
			},
		})
	}
	return result, nil
}

// UpdateStatus only checks that status is a known value; any status can be
// set from any other, including back to pending.
func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status string) (*response.OrderResponse, error) {
	newStatus := entity.OrderStatus(status)
	if !newStatus.Valid() {
		return nil, utils.NewValidationError(msgInvalidStatus)
	}

	order, err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewNotFoundError(msgOrderNotFound)
		}
		return nil, utils.NewInternalError(msgOrderStatusFailed, err)
	}
	if order == nil {
		return nil, utils.NewNotFoundError(msgOrderNotFound)
	}

	s.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", status))

	resp := response.OrderToResponse(order, s.decodeItems(order))
	return &resp, nil
}

// decodeItems never fails a listing; a corrupt snapshot is logged and shown
// as empty.
func (s *orderService) decodeItems(order *entity.Order) []entity.OrderItem {
	items, err := entity.DecodeItems(order.Items)
	if err != nil {
		s.log.Error("Corrupt order items", zap.Error(err), zap.Int64("order_id", order.ID))
		return []entity.OrderItem{}
	}
	return items
}
