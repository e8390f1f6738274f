package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"auberge-espagnole/internal/data/entity"
)

const (
	productsAllKey  = "products:all"
	productCacheTTL = 5 * time.Minute
)

// CachedProductRepository serves the product list from Redis and drops the
// cached list on every write. Redis failures fall back to the wrapped
// repository.
type CachedProductRepository struct {
	realRepo ProductRepository
	redis    *redis.Client
	ttl      time.Duration
	log      *zap.Logger
}

func NewCachedProductRepository(realRepo ProductRepository, rdb *redis.Client, log *zap.Logger) *CachedProductRepository {
	return &CachedProductRepository{
		realRepo: realRepo,
		redis:    rdb,
		ttl:      productCacheTTL,
		log:      log.With(zap.String("repository", "product_cache")),
	}
}

func (c *CachedProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	data, err := c.redis.Get(ctx, productsAllKey).Bytes()

	switch {
	case err == nil:
		var products []*entity.Product
		uerr := json.Unmarshal(data, &products)
		if uerr == nil {
			return products, nil
		}
		c.log.Warn("Failed to unmarshal cached products, continuing with DB", zap.Error(uerr))

	case errors.Is(err, redis.Nil):

	default:
		c.log.Warn("Redis error, continuing with DB", zap.Error(err))
	}

	products, err := c.realRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(products)
	if err != nil {
		c.log.Warn("Failed to marshal products", zap.Error(err))
		return products, nil
	}

	if err := c.redis.Set(ctx, productsAllKey, jsonData, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to cache products", zap.Error(err))
	}

	return products, nil
}

func (c *CachedProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	return c.realRepo.FindByID(ctx, id)
}

func (c *CachedProductRepository) Create(ctx context.Context, product *entity.Product) error {
	defer c.invalidate(ctx)
	return c.realRepo.Create(ctx, product)
}

func (c *CachedProductRepository) Update(ctx context.Context, product *entity.Product) error {
	defer c.invalidate(ctx)
	return c.realRepo.Update(ctx, product)
}

func (c *CachedProductRepository) Delete(ctx context.Context, id int64) error {
	defer c.invalidate(ctx)
	return c.realRepo.Delete(ctx, id)
}

func (c *CachedProductRepository) invalidate(ctx context.Context) {
	if err := c.redis.Del(ctx, productsAllKey).Err(); err != nil {
		c.log.Warn("Failed to delete products cache", zap.Error(err))
	}
}
