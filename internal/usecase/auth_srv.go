package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/internal/dto/response"
	"auberge-espagnole/pkg/utils"
)

const (
	msgCredentialsRequired = "Email et mot de passe requis"
	msgPasswordTooShort    = "Le mot de passe doit contenir au moins 6 caractères"
	msgEmailTaken          = "Cet email est déjà utilisé"
	msgBadCredentials      = "Email ou mot de passe incorrect"
	msgTokenMissing        = "Token manquant"
	msgTokenInvalid        = "Token invalide"
	msgUserNotFound        = "Utilisateur non trouvé"
)

const minPasswordLength = 6

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Verify(ctx context.Context, token string) (*response.AuthUser, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *utils.TokenManager
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, utils.NewValidationError(msgCredentialsRequired)
	}
	if len(req.Password) < minPasswordLength {
		return nil, utils.NewValidationError(msgPasswordTooShort)
	}
	req.Email = email
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, utils.NewFieldValidationError("Données d'inscription invalides", errs)
	}

	// 2. Reject taken email
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la création du compte", err)
	}
	if existingUser != nil {
		return nil, utils.NewConflictError(msgEmailTaken)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, utils.NewInternalError("Erreur lors de la création du compte", err)
	}

	// 4. Save user, self-registration is always a plain user
	user := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.NewConflictError(msgEmailTaken)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, utils.NewInternalError("Erreur lors de la création du compte", err)
	}

	// 5. Auto login
	resp, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return resp, nil
}

// Login answers unknown emails and wrong passwords with the same error.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, utils.NewValidationError(msgCredentialsRequired)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.NewInternalError("Erreur lors de la connexion", err)
	}

	if user == nil {
		s.log.Warn("Login with unknown email")
		return nil, utils.NewAuthError(msgBadCredentials)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, utils.NewAuthError(msgBadCredentials)
	}

	resp, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))
	return resp, nil
}

// Verify checks the token and that its user still exists, returning the
// current stored identity rather than the one frozen in the token.
func (s *authService) Verify(ctx context.Context, token string) (*response.AuthUser, error) {
	if token == "" {
		return nil, utils.NewAuthError(msgTokenMissing)
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		s.log.Debug("Token rejected", zap.Error(err))
		return nil, utils.NewAuthError(msgTokenInvalid)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, utils.NewInternalError("Erreur serveur", err)
	}
	if user == nil {
		s.log.Warn("Token for missing user", zap.Int64("user_id", claims.UserID))
		return nil, utils.NewAuthError(msgUserNotFound)
	}

	authUser := response.UserToAuthUser(user)
	return &authUser, nil
}

// EnsureAdmin creates the back-office account if no user has that email.
// An existing account is left as it is.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role != entity.RoleAdmin {
			s.log.Warn("Bootstrap admin email belongs to a non-admin user", zap.Int64("user_id", existing.ID))
		}
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.log.Info("Admin account created", zap.Int64("user_id", admin.ID), zap.String("email", email))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) issue(user *entity.User) (*response.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, utils.NewInternalError("Erreur lors de la génération du token", err)
	}

	return &response.AuthResponse{
		User:      response.UserToAuthUser(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
