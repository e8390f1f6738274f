package adaptor

import (
	"net/http"

	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/usecase"
	"auberge-espagnole/pkg/utils"

	"go.uber.org/zap"
)

const msgAuthRequired = "Authentification requise"

type UserHandler struct {
	service usecase.UserService
	orders  usecase.OrderService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, orders usecase.OrderService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		orders:  orders,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgAuthRequired)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profil récupéré", profile)
}

// UpdateProfile handles PUT /api/user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgAuthRequired)
		return
	}

	var req request.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profil mis à jour avec succès", profile)
}

// ChangePassword handles PUT /api/user/password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgAuthRequired)
		return
	}

	var req request.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		h.handleServiceError(w, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Mot de passe modifié avec succès", nil)
}

// GetOrders handles GET /api/user/orders
func (h *UserHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, msgAuthRequired)
		return
	}

	orders, err := h.orders.ListForUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user orders")
		return
	}

	utils.ResponseSuccess(w, "Commandes récupérées", orders)
}

// GetAllUsers handles GET /api/admin/users (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	if req.PerPage > 100 {
		req.PerPage = 100
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors), validationErrors)
		return
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Utilisateurs récupérés", users)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	logServiceError(h.log, err, operation)
	utils.ResponseError(w, err, msgServerError)
}
