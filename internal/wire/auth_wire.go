package wire

import (
	"net/http"

	"auberge-espagnole/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, authenticate func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/verify", authHandler.Verify) // reads the bearer token itself

		// ==================== PROTECTED ROUTES ====================
		r.With(authenticate).Post("/logout", authHandler.Logout)
	})
}
