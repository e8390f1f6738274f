package response

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auberge-espagnole/internal/data/entity"
)

func TestAbsoluteImageURL(t *testing.T) {
	rel := "/uploads/abc.jpg"
	abs := "https://images.example.com/jamon.jpg"
	empty := ""

	got := AbsoluteImageURL(&rel, "http://localhost:3000/")
	require.NotNil(t, got)
	assert.Equal(t, "http://localhost:3000/uploads/abc.jpg", *got)

	got = AbsoluteImageURL(&abs, "http://localhost:3000")
	require.NotNil(t, got)
	assert.Equal(t, abs, *got)

	assert.Nil(t, AbsoluteImageURL(nil, "http://localhost:3000"))
	assert.Nil(t, AbsoluteImageURL(&empty, "http://localhost:3000"))
}

func TestProductToResponse(t *testing.T) {
	image := "/uploads/x.png"
	p := &entity.Product{
		Name:         "Queso Manchego",
		Price:        decimal.RequireFromString("15.00"),
		Stock:        4,
		Image:        &image,
		CategoryID:   1,
		CategoryName: "Charcuterie & Fromages",
	}
	p.ID = 9

	resp := ProductToResponse(p, "http://shop.test")
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, "Charcuterie & Fromages", resp.Category.Name)
	assert.Equal(t, "http://shop.test/uploads/x.png", *resp.Image)
	assert.Equal(t, "/uploads/x.png", *p.Image, "entity is not modified")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(15), body["price"])
}
