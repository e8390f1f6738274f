package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auberge-espagnole/internal/data/entity"
	"auberge-espagnole/internal/dto/request"
	"auberge-espagnole/pkg/utils"
)

func TestUserService_UpdateProfileIsPartial(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	user := env.createUser(t, "lucia@example.com", "secret123", entity.RoleUser)

	_, err := env.service.User.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		FirstName:  strPtr("Lucia"),
		City:       strPtr("Metz"),
		PostalCode: strPtr("57000"),
	})
	require.NoError(t, err)

	profile, err := env.service.User.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		Phone: strPtr("0601020304"),
		City:  strPtr(""),
	})
	require.NoError(t, err)

	require.NotNil(t, profile.FirstName)
	require.NotNil(t, profile.Phone)
	require.NotNil(t, profile.PostalCode)
	assert.Equal(t, "Lucia", *profile.FirstName)
	assert.Equal(t, "0601020304", *profile.Phone)
	assert.Equal(t, "57000", *profile.PostalCode)
	assert.Nil(t, profile.City, "blank value clears the field")

	fetched, err := env.service.User.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.FirstName, fetched.FirstName)
	assert.Equal(t, "lucia@example.com", fetched.Email)
}

func TestUserService_GetProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.service.User.GetProfile(context.Background(), 12)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestUserService_ChangePassword(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	user := env.createUser(t, "lucia@example.com", "secret123", entity.RoleUser)

	err := env.service.User.ChangePassword(ctx, user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "wrong-one",
		NewPassword:     "newsecret",
	})
	assert.True(t, utils.IsKind(err, utils.KindAuth))
	assert.Equal(t, "Mot de passe actuel incorrect", utils.PublicMessage(err, ""))

	err = env.service.User.ChangePassword(ctx, user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "123",
	})
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	require.NoError(t, env.service.User.ChangePassword(ctx, user.ID, &request.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	}))

	_, err = env.service.Auth.Login(ctx, &request.LoginRequest{Email: "lucia@example.com", Password: "secret123"})
	assert.True(t, utils.IsKind(err, utils.KindAuth))

	_, err = env.service.Auth.Login(ctx, &request.LoginRequest{Email: "lucia@example.com", Password: "newsecret"})
	assert.NoError(t, err)
}

func TestUserService_GetAllUsersPaginates(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		env.createUser(t, email, "secret123", entity.RoleUser)
	}

	page, err := env.service.User.GetAllUsers(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	page, err = env.service.User.GetAllUsers(ctx, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
}
