package usecase

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/pkg/utils"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func pngUpload(name string) *request.ImageUpload {
	data := append([]byte{}, pngHeader...)
	return &request.ImageUpload{File: bytes.NewReader(data), Filename: name, Size: int64(len(data))}
}

func uploadedFiles(t *testing.T, env *testEnv) []string {
	t.Helper()
	entries, err := os.ReadDir(env.images.Dir())
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCatalogService_ListCategories(t *testing.T) {
	env := newTestEnv(t, false)

	categories, err := env.service.Catalog.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Charcuterie & Fromages", categories[0].Name)
	assert.Equal(t, "Boissons & Vins", categories[1].Name)
	assert.Equal(t, "Épicerie & Conserves", categories[2].Name)
}

func TestCatalogService_CreateProductWithImage(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	product, err := env.service.Catalog.CreateProduct(ctx, &request.ProductForm{
		Name:        strPtr(" Jamón Ibérico "),
		Description: strPtr("Bellota, 36 mois"),
		Price:       strPtr("24.9"),
		Stock:       strPtr("12"),
		CategoryID:  strPtr("1"),
		Image:       pngUpload("jamon.PNG"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Jamón Ibérico", product.Name)
	assert.True(t, decimal.RequireFromString("24.90").Equal(product.Price))
	assert.Equal(t, 12, product.Stock)
	assert.Equal(t, "Charcuterie & Fromages", product.Category.Name)
	require.NotNil(t, product.Image)
	assert.True(t, strings.HasPrefix(*product.Image, "http://shop.test/uploads/"), *product.Image)
	assert.True(t, strings.HasSuffix(*product.Image, ".png"), *product.Image)

	assert.Len(t, uploadedFiles(t, env), 1)

	listed, err := env.service.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, *product.Image, *listed[0].Image)
}

func TestCatalogService_StockDefaultsToZero(t *testing.T) {
	env := newTestEnv(t, false)

	product, err := env.service.Catalog.CreateProduct(context.Background(), &request.ProductForm{
		Name:       strPtr("Aceite de oliva"),
		Price:      strPtr("9.50"),
		CategoryID: strPtr("3"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
	assert.Nil(t, product.Image)
}

func TestCatalogService_InvalidInputLeavesNoFile(t *testing.T) {
	tests := []struct {
		name string
		form request.ProductForm
	}{
		{"invalid price", request.ProductForm{Name: strPtr("Turrón"), Price: strPtr("abc"), CategoryID: strPtr("1")}},
		{"negative price", request.ProductForm{Name: strPtr("Turrón"), Price: strPtr("-2"), CategoryID: strPtr("1")}},
		{"missing name", request.ProductForm{Price: strPtr("5"), CategoryID: strPtr("1")}},
		{"blank name", request.ProductForm{Name: strPtr("  "), Price: strPtr("5"), CategoryID: strPtr("1")}},
		{"missing category", request.ProductForm{Name: strPtr("Turrón"), Price: strPtr("5")}},
		{"unknown category", request.ProductForm{Name: strPtr("Turrón"), Price: strPtr("5"), CategoryID: strPtr("42")}},
		{"non numeric category", request.ProductForm{Name: strPtr("Turrón"), Price: strPtr("5"), CategoryID: strPtr("one")}},
		{"negative stock", request.ProductForm{Name: strPtr("Turrón"), Price: strPtr("5"), Stock: strPtr("-1"), CategoryID: strPtr("1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)
			form := tt.form
			form.Image = pngUpload("turron.png")

			_, err := env.service.Catalog.CreateProduct(context.Background(), &form)
			assert.True(t, utils.IsKind(err, utils.KindValidation), "got %v", err)
			assert.Empty(t, uploadedFiles(t, env))

			products, err := env.service.Catalog.ListProducts(context.Background())
			require.NoError(t, err)
			assert.Empty(t, products)
		})
	}
}

func TestCatalogService_RejectsNonImage(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.service.Catalog.CreateProduct(context.Background(), &request.ProductForm{
		Name:       strPtr("Turrón"),
		Price:      strPtr("5"),
		CategoryID: strPtr("1"),
		Image: &request.ImageUpload{
			File:     strings.NewReader("#!/bin/sh\necho not an image\n"),
			Filename: "turron.png",
		},
	})
	assert.True(t, utils.IsKind(err, utils.KindValidation), "got %v", err)
	assert.Empty(t, uploadedFiles(t, env))
}

func TestCatalogService_RejectsOversizedImage(t *testing.T) {
	env := newTestEnv(t, false)

	data := append(append([]byte{}, pngHeader...), make([]byte, 1<<20)...)
	_, err := env.service.Catalog.CreateProduct(context.Background(), &request.ProductForm{
		Name:       strPtr("Turrón"),
		Price:      strPtr("5"),
		CategoryID: strPtr("1"),
		Image:      &request.ImageUpload{File: bytes.NewReader(data), Filename: "big.png", Size: int64(len(data))},
	})
	assert.True(t, utils.IsKind(err, utils.KindValidation), "got %v", err)
	assert.Empty(t, uploadedFiles(t, env))
}

func TestCatalogService_UpdateReplacesImage(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	product, err := env.service.Catalog.CreateProduct(ctx, &request.ProductForm{
		Name:       strPtr("Chorizo"),
		Price:      strPtr("8.50"),
		CategoryID: strPtr("1"),
		Image:      pngUpload("chorizo.png"),
	})
	require.NoError(t, err)
	before := uploadedFiles(t, env)
	require.Len(t, before, 1)

	updated, err := env.service.Catalog.UpdateProduct(ctx, product.ID, &request.ProductForm{
		Stock: strPtr("3"),
		Image: pngUpload("chorizo-2.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Chorizo", updated.Name, "absent fields are kept")
	assert.Equal(t, 3, updated.Stock)
	assert.NotEqual(t, *product.Image, *updated.Image)

	after := uploadedFiles(t, env)
	require.Len(t, after, 1)
	assert.NotEqual(t, before[0], after[0])
}

func TestCatalogService_UpdateInvalidKeepsProduct(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	product, err := env.service.Catalog.CreateProduct(ctx, &request.ProductForm{
		Name:       strPtr("Chorizo"),
		Price:      strPtr("8.50"),
		CategoryID: strPtr("1"),
		Image:      pngUpload("chorizo.png"),
	})
	require.NoError(t, err)

	_, err = env.service.Catalog.UpdateProduct(ctx, product.ID, &request.ProductForm{
		Price: strPtr("cher"),
		Image: pngUpload("chorizo-2.png"),
	})
	assert.True(t, utils.IsKind(err, utils.KindValidation))
	assert.Len(t, uploadedFiles(t, env), 1)

	current, err := env.service.Catalog.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, *product.Image, *current.Image)
	assert.True(t, product.Price.Equal(current.Price))
}

func TestCatalogService_UpdateAndDeleteUnknownProduct(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	_, err := env.service.Catalog.UpdateProduct(ctx, 77, &request.ProductForm{Name: strPtr("x")})
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	err = env.service.Catalog.DeleteProduct(ctx, 77)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	_, err = env.service.Catalog.GetProduct(ctx, 77)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestCatalogService_DeleteRemovesImage(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	product, err := env.service.Catalog.CreateProduct(ctx, &request.ProductForm{
		Name:       strPtr("Sobrasada"),
		Price:      strPtr("7"),
		CategoryID: strPtr("1"),
		Image:      pngUpload("sobrasada.png"),
	})
	require.NoError(t, err)
	require.Len(t, uploadedFiles(t, env), 1)

	require.NoError(t, env.service.Catalog.DeleteProduct(ctx, product.ID))
	assert.Empty(t, uploadedFiles(t, env))

	products, err := env.service.Catalog.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}
