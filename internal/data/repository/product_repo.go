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

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productSelect = `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.image,
		       p.category_id, c.name, p.created_at, p.updated_at
		FROM products p
		INNER JOIN categories c ON c.id = p.category_id
`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Image,
		&product.CategoryID,
		&product.CategoryName,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, image, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Image,
		product.CategoryID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, translatePgError(err))
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := productSelect + ` WHERE p.id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by id %d: %w", id, err)
	}

	return product, nil
}

// FindAll lists every product with its category name, oldest first
func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := productSelect + ` ORDER BY p.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	products := []*entity.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5,
		    image = $6, category_id = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Image,
		product.CategoryID,
	).Scan(&product.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update product %d: %w", product.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("update product %d: %w", product.ID, translatePgError(err))
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete product %d: %w", id, ErrNotFound)
	}

	r.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}
