package wire

import (
	"net/http"

	"auberge-espagnole/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures account routes and the admin user list
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	authenticate, admin func(http.Handler) http.Handler,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.With(authenticate).Route("/user", func(r chi.Router) {
		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)
		r.Put("/password", userHandler.ChangePassword)
		r.Get("/orders", userHandler.GetOrders)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(authenticate, admin).Get("/admin/users", userHandler.GetAllUsers) // ?page=1&per_page=10
}
