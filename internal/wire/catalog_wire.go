package wire

import (
	"net/http"

	"auberge-espagnole/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog exposes the catalog publicly and product mutations to admins
func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	authenticate, admin func(http.Handler) http.Handler,
) {
	r.Get("/categories", catalogHandler.GetCategories)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", catalogHandler.GetProducts)
		r.Get("/{id}", catalogHandler.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(authenticate, admin)
			r.Post("/", catalogHandler.CreateProduct)
			r.Put("/{id}", catalogHandler.UpdateProduct)
			r.Delete("/{id}", catalogHandler.DeleteProduct)
		})
	})
}
