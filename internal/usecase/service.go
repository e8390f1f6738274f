package usecase

import (
	"go.uber.org/zap"

	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/pkg/storage"
	"auberge-espagnole/pkg/utils"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Order   OrderService
}

func NewService(
	repo *repository.Repository,
	images storage.ImageStore,
	tokens *utils.TokenManager,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, log),
		User:    NewUserService(repo.User, log),
		Catalog: NewCatalogService(repo.Category, repo.Product, images, config.App.BaseURL, log),
		Order:   NewOrderService(repo.Order, repo.User, config.Delivery, log),
	}
}
