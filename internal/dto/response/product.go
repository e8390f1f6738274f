package response

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"auberge-espagnole/internal/data/entity"
)

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	Image       *string          `json:"image"`
	CategoryID  int64            `json:"categoryId"`
	Category    CategoryResponse `json:"category"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

// ProductToResponse rewrites a stored relative image path into an absolute
// URL under baseURL; absolute URLs are kept as they are.
func ProductToResponse(product *entity.Product, baseURL string) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Image:       AbsoluteImageURL(product.Image, baseURL),
		CategoryID:  product.CategoryID,
		Category: CategoryResponse{
			ID:   product.CategoryID,
			Name: product.CategoryName,
		},
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func AbsoluteImageURL(image *string, baseURL string) *string {
	if image == nil || *image == "" {
		return nil
	}
	if !strings.HasPrefix(*image, "/") {
		return image
	}
	url := strings.TrimRight(baseURL, "/") + *image
	return &url
}
