package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/dto/response"
	"auberge-espagnole/pkg/storage"
	"auberge-espagnole/pkg/utils"
)

const (
	msgProductFieldsMissing = "Données manquantes: nom, prix ou catégorie sont requis."
	msgInvalidStock         = "Le stock doit être un entier positif ou nul"
	msgInvalidPrice         = "Le prix doit être un nombre positif"
	msgUnknownCategory      = "Catégorie inconnue"
	msgProductNotFound      = "Produit non trouvé"
	msgImageNotImage        = "Le fichier doit être une image"
	msgImageTooLarge        = "L'image dépasse la taille maximale autorisée"
	msgProductSaveFailed    = "Erreur interne du serveur lors de la publication."
	msgProductsListFailed   = "Erreur dans la récupération des produits"
	msgCategoriesFailed     = "Erreur de récupération des catégories"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)
	ListProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetProduct(ctx context.Context, id int64) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, form *request.ProductForm) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, form *request.ProductForm) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	images       storage.ImageStore
	baseURL      string
	log          *zap.Logger
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	images storage.ImageStore,
	baseURL string,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		images:       images,
		baseURL:      baseURL,
		log:          log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError(msgCategoriesFailed, err)
	}

	result := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		result[i] = response.CategoryToResponse(category)
	}
	return result, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError(msgProductsListFailed, err)
	}

	result := make([]response.ProductResponse, len(products))
	for i, product := range products {
		result[i] = response.ProductToResponse(product, s.baseURL)
	}
	return result, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(msgProductsListFailed, err)
	}
	if product == nil {
		return nil, utils.NewNotFoundError(msgProductNotFound)
	}

	resp := response.ProductToResponse(product, s.baseURL)
	return &resp, nil
}

// CreateProduct validates every field before touching the disk, so an
// invalid form never leaves an image behind. A failed insert removes the
// image it just stored.
func (s *catalogService) CreateProduct(ctx context.Context, form *request.ProductForm) (*response.ProductResponse, error) {
	if form.Name == nil || form.Price == nil || form.CategoryID == nil {
		return nil, utils.NewValidationError(msgProductFieldsMissing)
	}

	product := &entity.Product{}
	if err := s.applyForm(ctx, product, form); err != nil {
		return nil, err
	}

	if form.Image != nil {
		path, err := s.storeImage(form.Image)
		if err != nil {
			return nil, err
		}
		product.Image = &path
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.discardImage(product.Image)
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, utils.NewValidationError(msgUnknownCategory)
		}
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", product.Name))
		return nil, utils.NewInternalError(msgProductSaveFailed, err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Bool("has_image", product.Image != nil))

	resp := response.ProductToResponse(product, s.baseURL)
	return &resp, nil
}

// UpdateProduct overwrites the fields present in form. A new image replaces
// the stored one, which is deleted once the row points at the new file.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, form *request.ProductForm) (*response.ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError(msgProductSaveFailed, err)
	}
	if product == nil {
		return nil, utils.NewNotFoundError(msgProductNotFound)
	}

	if err := s.applyForm(ctx, product, form); err != nil {
		return nil, err
	}

	previousImage := product.Image
	if form.Image != nil {
		path, err := s.storeImage(form.Image)
		if err != nil {
			return nil, err
		}
		product.Image = &path
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if form.Image != nil {
			s.discardImage(product.Image)
		}
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, utils.NewNotFoundError(msgProductNotFound)
		case errors.Is(err, repository.ErrForeignKey):
			return nil, utils.NewValidationError(msgUnknownCategory)
		}
		s.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", id))
		return nil, utils.NewInternalError(msgProductSaveFailed, err)
	}

	if form.Image != nil {
		s.discardImage(previousImage)
	}

	s.log.Info("Product updated", zap.Int64("product_id", id))

	resp := response.ProductToResponse(product, s.baseURL)
	return &resp, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return utils.NewInternalError("Erreur lors de la suppression du produit", err)
	}
	if product == nil {
		return utils.NewNotFoundError(msgProductNotFound)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NewNotFoundError(msgProductNotFound)
		}
		return utils.NewInternalError("Erreur lors de la suppression du produit", err)
	}

	s.discardImage(product.Image)

	s.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}

// ==================== HELPER METHODS ====================

// applyForm parses and validates the present form fields into product.
func (s *catalogService) applyForm(ctx context.Context, product *entity.Product, form *request.ProductForm) error {
	if form.Name != nil {
		name := strings.TrimSpace(*form.Name)
		if name == "" {
			return utils.NewValidationError(msgProductFieldsMissing)
		}
		product.Name = name
	}

	if form.Description != nil {
		product.Description = utils.StringPtr(*form.Description)
	}

	if form.Price != nil {
		price, err := decimal.NewFromString(strings.TrimSpace(*form.Price))
		if err != nil {
			return utils.NewValidationError(msgProductFieldsMissing)
		}
		if price.IsNegative() {
			return utils.NewValidationError(msgInvalidPrice)
		}
		product.Price = price.Round(2)
	}

	if form.Stock != nil {
		raw := strings.TrimSpace(*form.Stock)
		stock := 0
		if raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return utils.NewValidationError(msgInvalidStock)
			}
			stock = n
		}
		product.Stock = stock
	}

	if form.CategoryID != nil {
		categoryID, err := strconv.ParseInt(strings.TrimSpace(*form.CategoryID), 10, 64)
		if err != nil {
			return utils.NewValidationError(msgProductFieldsMissing)
		}

		category, err := s.categoryRepo.FindByID(ctx, categoryID)
		if err != nil {
			return utils.NewInternalError(msgProductSaveFailed, err)
		}
		if category == nil {
			return utils.NewValidationError(msgUnknownCategory)
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}

	return nil
}

func (s *catalogService) storeImage(image *request.ImageUpload) (string, error) {
	path, err := s.images.Save(image.File, image.Filename)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, storage.ErrNotImage):
		return "", utils.NewValidationError(msgImageNotImage)
	case errors.Is(err, storage.ErrTooLarge):
		return "", utils.NewValidationError(msgImageTooLarge)
	default:
		s.log.Error("Failed to store image", zap.Error(err), zap.String("filename", image.Filename))
		return "", utils.NewInternalError(msgProductSaveFailed, err)
	}
}

func (s *catalogService) discardImage(path *string) {
	if path == nil {
		return
	}
	if err := s.images.Delete(*path); err != nil {
		s.log.Warn("Failed to remove image", zap.Error(err), zap.String("image", *path))
	}
}
