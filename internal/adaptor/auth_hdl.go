package adaptor

import (
	"net/http"

	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/usecase"
	"auberge-espagnole/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	// Service validates, so the French messages match the login ones
	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "Utilisateur créé avec succès", response)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Connexion réussie", response)
}

// Verify handles GET /api/auth/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.BearerToken(r.Header.Get("Authorization"))

	user, err := h.service.Verify(r.Context(), token)
	if err != nil {
		h.handleServiceError(w, err, "verify token")
		return
	}

	utils.ResponseSuccess(w, "Token valide", map[string]any{"user": user})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, the client drops its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	email, _ := utils.GetEmailFromContext(r.Context())
	h.log.Info("User logged out", zap.Int64("user_id", userID), zap.String("email", email))

	utils.ResponseSuccess(w, "Déconnexion réussie", nil)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	logServiceError(h.log, err, operation)
	utils.ResponseError(w, err, msgServerError)
}
