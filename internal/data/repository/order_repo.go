package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/pkg/database"
)

// OrderRepository lists are always newest first, ties broken by id.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)
	FindAllWithUser(ctx context.Context) ([]*entity.OrderWithUser, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `o.id, o.user_id, o.status, o.total, o.items, o.delivery_address,
		       o.postal_code, o.phone, o.notes, o.created_at`

func orderFields(order *entity.Order) []any {
	return []any{
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.Total,
		&order.Items,
		&order.DeliveryAddress,
		&order.PostalCode,
		&order.Phone,
		&order.Notes,
		&order.CreatedAt,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (user_id, status, total, items, delivery_address,
		                    postal_code, phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		order.UserID,
		order.Status,
		order.Total,
		order.Items,
		order.DeliveryAddress,
		order.PostalCode,
		order.Phone,
		order.Notes,
	).Scan(&order.ID, &order.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
		)
		return fmt.Errorf("create order for user %d: %w", order.UserID, translatePgError(err))
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(orderFields(&order)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by id %d: %w", id, err)
	}

	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to get user orders",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find orders of user %d: %w", userID, err)
	}
	defer rows.Close()

	orders := []*entity.Order{}
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(orderFields(&order)...); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindAllWithUser(ctx context.Context) ([]*entity.OrderWithUser, error) {
	query := `
		SELECT ` + orderColumns + `, u.email, u.first_name, u.last_name
		FROM orders o
		INNER JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC, o.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	orders := []*entity.OrderWithUser{}
	for rows.Next() {
		var order entity.OrderWithUser
		dest := append(orderFields(&order.Order), &order.UserEmail, &order.UserFirstName, &order.UserLastName)
		if err := rows.Scan(dest...); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus overwrites the status and returns the updated order, or nil
// when no order has that id.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	query := `
		UPDATE orders o SET status = $2
		WHERE o.id = $1
		RETURNING ` + orderColumns

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id, status).Scan(orderFields(&order)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update status of order %d: %w", id, err)
	}

	return &order, nil
}
