package adaptor

import (
	"errors"
	"net/http"

	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/usecase"
	"auberge-espagnole/pkg/utils"

	"go.uber.org/zap"
)

// multipart parts beyond this stay on disk in temp files
const multipartMemory = 8 << 20

type CatalogHandler struct {
	service        usecase.CatalogService
	maxUploadBytes int64
	log            *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, maxUploadBytes int64, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		log:            log.With(zap.String("handler", "catalog")),
	}
}

// GetCategories handles GET /api/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Catégories récupérées", categories)
}

// GetProducts handles GET /api/products
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Produits récupérés", products)
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.ResponseBadRequest(w, msgInvalidID, nil)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Produit récupéré", product)
}

// CreateProduct handles POST /api/products (multipart, admin only)
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	form, cleanup, err := h.parseProductForm(w, r)
	if err != nil {
		h.handleServiceError(w, err, "parse product form")
		return
	}
	defer cleanup()

	product, err := h.service.CreateProduct(r.Context(), form)
	if err != nil {
		h.handleServiceError(w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Produit ajouté avec succès", product)
}

// UpdateProduct handles PUT /api/products/{id} (multipart, admin only)
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.ResponseBadRequest(w, msgInvalidID, nil)
		return
	}

	form, cleanup, err := h.parseProductForm(w, r)
	if err != nil {
		h.handleServiceError(w, err, "parse product form")
		return
	}
	defer cleanup()

	product, err := h.service.UpdateProduct(r.Context(), id, form)
	if err != nil {
		h.handleServiceError(w, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Produit mis à jour avec succès", product)
}

// DeleteProduct handles DELETE /api/products/{id} (admin only)
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.ResponseBadRequest(w, msgInvalidID, nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Produit supprimé avec succès", nil)
}

// parseProductForm reads the multipart body. Absent fields stay nil so
// updates only touch what was sent.
func (h *CatalogHandler) parseProductForm(w http.ResponseWriter, r *http.Request) (*request.ProductForm, func(), error) {
	noop := func() {}

	// room for the text fields on top of the image
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, noop, utils.NewValidationError("L'image dépasse la taille maximale autorisée")
		}
		return nil, noop, utils.NewValidationError("Formulaire multipart invalide")
	}

	cleanup := func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.log.Warn("Failed to remove multipart temp files", zap.Error(err))
		}
	}

	field := func(name string) *string {
		values, ok := r.MultipartForm.Value[name]
		if !ok || len(values) == 0 {
			return nil
		}
		v := values[0]
		return &v
	}

	form := &request.ProductForm{
		Name:        field("name"),
		Description: field("description"),
		Price:       field("price"),
		Stock:       field("stock"),
		CategoryID:  field("categoryId"),
	}
	if form.CategoryID == nil {
		form.CategoryID = field("category_id")
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		form.Image = &request.ImageUpload{
			File:     file,
			Filename: header.Filename,
			Size:     header.Size,
		}
		inner := cleanup
		cleanup = func() {
			file.Close()
			inner()
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		cleanup()
		return nil, noop, utils.NewValidationError("Formulaire multipart invalide")
	}

	return form, cleanup, nil
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	logServiceError(h.log, err, operation)
	utils.ResponseError(w, err, msgServerError)
}
