package wire

import (
	"net/http"

	"auberge-espagnole/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	authenticate, admin func(http.Handler) http.Handler,
) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/create", orderHandler.CreateOrder)
		r.Get("/user", orderHandler.GetUserOrders)

		// admin back-office
		r.With(admin).Get("/all", orderHandler.GetAllOrders)
		r.With(admin).Put("/{id}/status", orderHandler.UpdateStatus)
	})
}
