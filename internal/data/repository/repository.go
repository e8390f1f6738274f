package repository

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"auberge-espagnole/pkg/database"
)

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Product  ProductRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}

// WithProductCache puts the Redis read-through cache in front of the
// product repository. A nil client leaves the repository untouched.
func (r *Repository) WithProductCache(rdb *redis.Client, log *zap.Logger) *Repository {
	if rdb == nil {
		return r
	}
	r.Product = NewCachedProductRepository(r.Product, rdb, log)
	return r
}
