package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/dto/response"
	"auberge-espagnole/pkg/utils"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *request.ChangePasswordRequest) error
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Erreur serveur", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError(msgUserNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateProfile overwrites the fields present in req; a present but blank
// field clears the stored value.
func (us *userService) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, utils.NewFieldValidationError("Données de profil invalides", errs)
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la mise à jour", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError(msgUserNotFound)
	}

	if req.FirstName != nil {
		user.FirstName = utils.StringPtr(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = utils.StringPtr(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = utils.StringPtr(*req.Phone)
	}
	if req.Address != nil {
		user.Address = utils.StringPtr(*req.Address)
	}
	if req.City != nil {
		user.City = utils.StringPtr(*req.City)
	}
	if req.PostalCode != nil {
		user.PostalCode = utils.StringPtr(*req.PostalCode)
	}

	if err := us.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewNotFoundError(msgUserNotFound)
		}
		return nil, utils.NewInternalError("Erreur lors de la mise à jour", err)
	}

	us.log.Info("Profile updated", zap.Int64("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ChangePassword(ctx context.Context, userID int64, req *request.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return utils.NewValidationError("Mot de passe actuel et nouveau mot de passe requis")
	}
	if len(req.NewPassword) < minPasswordLength {
		return utils.NewValidationError(msgPasswordTooShort)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewFieldValidationError("Données invalides", errs)
	}

	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.NewInternalError("Erreur lors de la modification du mot de passe", err)
	}
	if user == nil {
		return utils.NewNotFoundError(msgUserNotFound)
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		us.log.Warn("Password change with wrong current password", zap.Int64("user_id", userID))
		return utils.NewAuthError("Mot de passe actuel incorrect")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.NewInternalError("Erreur lors de la modification du mot de passe", err)
	}

	if err := us.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NewNotFoundError(msgUserNotFound)
		}
		return utils.NewInternalError("Erreur lors de la modification du mot de passe", err)
	}

	us.log.Info("Password changed", zap.Int64("user_id", userID))
	return nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	// Set defaults
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	users, err := us.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des utilisateurs", err)
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la récupération des utilisateurs", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	us.log.Debug("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}
