package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/pkg/database"
)

// memoryStore backs the in-memory repositories (DB_DRIVER=memory and tests).
// Values are copied in and out so callers never share state with the store.
type memoryStore struct {
	mu sync.RWMutex

	users      map[int64]entity.User
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	orders     map[int64]entity.Order

	nextUserID     int64
	nextCategoryID int64
	nextProductID  int64
	nextOrderID    int64

	now func() time.Time
}

// NewMemoryRepository returns repositories backed by process memory, seeded
// with the default categories like a freshly migrated database.
func NewMemoryRepository(log *zap.Logger) *Repository {
	s := &memoryStore{
		users:      make(map[int64]entity.User),
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
		orders:     make(map[int64]entity.Order),
		now:        time.Now,
	}

	for _, name := range database.DefaultCategories {
		s.nextCategoryID++
		s.categories[s.nextCategoryID] = entity.Category{ID: s.nextCategoryID, Name: name}
	}

	log.Info("Using in-memory repositories", zap.Int("categories", len(s.categories)))

	return &Repository{
		User:     &memoryUserRepository{s},
		Category: &memoryCategoryRepository{s},
		Product:  &memoryProductRepository{s},
		Order:    &memoryOrderRepository{s},
	}
}

// ==================== USERS ====================

type memoryUserRepository struct{ s *memoryStore }

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicate)
		}
	}

	r.s.nextUserID++
	now := r.s.now()
	user.ID = r.s.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID > users[j].ID
	})

	if offset >= len(users) {
		return []*entity.User{}, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (r *memoryUserRepository) CountAll(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r *memoryUserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[user.ID]
	if !ok {
		return fmt.Errorf("update user %d: %w", user.ID, ErrNotFound)
	}

	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Phone = user.Phone
	stored.Address = user.Address
	stored.City = user.City
	stored.PostalCode = user.PostalCode
	stored.UpdatedAt = r.s.now()
	r.s.users[user.ID] = stored

	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memoryUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("update password of user %d: %w", id, ErrNotFound)
	}
	stored.PasswordHash = passwordHash
	stored.UpdatedAt = r.s.now()
	r.s.users[id] = stored
	return nil
}

// ==================== CATEGORIES ====================

type memoryCategoryRepository struct{ s *memoryStore }

func (r *memoryCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		categories = append(categories, &c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *memoryCategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ==================== PRODUCTS ====================

type memoryProductRepository struct{ s *memoryStore }

// withCategory joins the category name; caller holds the lock.
func (r *memoryProductRepository) withCategory(p entity.Product) *entity.Product {
	p.CategoryName = r.s.categories[p.CategoryID].Name
	return &p
}

func (r *memoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return fmt.Errorf("create product %s: %w", product.Name, ErrForeignKey)
	}

	r.s.nextProductID++
	now := r.s.now()
	product.ID = r.s.nextProductID
	product.CreatedAt = now
	product.UpdatedAt = now
	product.CategoryName = r.s.categories[product.CategoryID].Name
	r.s.products[product.ID] = *product
	return nil
}

func (r *memoryProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.withCategory(p), nil
}

func (r *memoryProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		products = append(products, r.withCategory(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.products[product.ID]
	if !ok {
		return fmt.Errorf("update product %d: %w", product.ID, ErrNotFound)
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return fmt.Errorf("update product %d: %w", product.ID, ErrForeignKey)
	}

	updated := *product
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = r.s.now()
	updated.CategoryName = r.s.categories[updated.CategoryID].Name
	r.s.products[product.ID] = updated

	product.UpdatedAt = updated.UpdatedAt
	product.CategoryName = updated.CategoryName
	return nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return fmt.Errorf("delete product %d: %w", id, ErrNotFound)
	}
	delete(r.s.products, id)
	return nil
}

// ==================== ORDERS ====================

type memoryOrderRepository struct{ s *memoryStore }

func sortOrdersNewestFirst(orders []*entity.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[order.UserID]; !ok {
		return fmt.Errorf("create order for user %d: %w", order.UserID, ErrForeignKey)
	}

	r.s.nextOrderID++
	order.ID = r.s.nextOrderID
	order.CreatedAt = r.s.now()
	r.s.orders[order.ID] = *order
	return nil
}

func (r *memoryOrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *memoryOrderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := []*entity.Order{}
	for _, o := range r.s.orders {
		if o.UserID == userID {
			o := o
			orders = append(orders, &o)
		}
	}
	sortOrdersNewestFirst(orders)
	return orders, nil
}

func (r *memoryOrderRepository) FindAllWithUser(ctx context.Context) ([]*entity.OrderWithUser, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := make([]*entity.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		o := o
		orders = append(orders, &o)
	}
	sortOrdersNewestFirst(orders)

	result := make([]*entity.OrderWithUser, 0, len(orders))
	for _, o := range orders {
		owner := r.s.users[o.UserID]
		result = append(result, &entity.OrderWithUser{
			Order:         *o,
			UserEmail:     owner.Email,
			UserFirstName: owner.FirstName,
			UserLastName:  owner.LastName,
		})
	}
	return result, nil
}

func (r *memoryOrderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	o.Status = status
	r.s.orders[id] = o
	return &o, nil
}
