package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/pkg/storage"
	"auberge-espagnole/pkg/utils"
)

type testEnv struct {
	repo    *repository.Repository
	images  *storage.LocalStore
	tokens  *utils.TokenManager
	service *Service
}

func newTestEnv(t *testing.T, enforceDelivery bool) *testEnv {
	t.Helper()

	log := zap.NewNop()
	config := &utils.Config{
		App:      utils.AppConfig{Name: "auberge-test", BaseURL: "http://shop.test"},
		JWT:      utils.JWTConfig{Secret: "test-secret", ExpiryHours: 168},
		Upload:   utils.UploadConfig{Dir: t.TempDir(), MaxSizeMB: 1},
		Delivery: utils.DeliveryConfig{Enforce: enforceDelivery},
	}

	images, err := storage.NewLocalStore(config.Upload, log)
	require.NoError(t, err)

	repo := repository.NewMemoryRepository(log)
	tokens := utils.NewTokenManager(config.JWT)

	return &testEnv{
		repo:    repo,
		images:  images,
		tokens:  tokens,
		service: NewService(repo, images, tokens, config, log),
	}
}

// createUser stores a user directly, bypassing registration.
func (e *testEnv) createUser(t *testing.T, email, password string, role entity.UserRole) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.User{Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, e.repo.User.Create(context.Background(), user))
	return user
}
