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

func TestAuthService_RegisterIssuesMatchingToken(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	resp, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Email:    "  Lucia@Example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "lucia@example.com", resp.User.Email)
	assert.Equal(t, entity.RoleUser, resp.User.Role)

	claims, err := env.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, resp.User.Email, claims.Email)
	assert.Equal(t, string(entity.RoleUser), claims.Role)

	stored, err := env.repo.User.FindByID(ctx, resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	tests := []struct {
		name string
		req  request.RegisterRequest
	}{
		{"missing email", request.RegisterRequest{Password: "secret123"}},
		{"missing password", request.RegisterRequest{Email: "a@example.com"}},
		{"short password", request.RegisterRequest{Email: "a@example.com", Password: "12345"}},
		{"malformed email", request.RegisterRequest{Email: "not-an-email", Password: "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := env.service.Auth.Register(ctx, &req)
			assert.True(t, utils.IsKind(err, utils.KindValidation), "got %v", err)
		})
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	_, err := env.service.Auth.Register(ctx, &request.RegisterRequest{Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = env.service.Auth.Register(ctx, &request.RegisterRequest{Email: "DUP@example.com", Password: "other-pass"})
	assert.True(t, utils.IsKind(err, utils.KindConflict), "got %v", err)
	assert.Equal(t, "Cet email est déjà utilisé", utils.PublicMessage(err, ""))
}

func TestAuthService_LoginSameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()
	env.createUser(t, "known@example.com", "secret123", entity.RoleUser)

	_, errUnknown := env.service.Auth.Login(ctx, &request.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	_, errWrong := env.service.Auth.Login(ctx, &request.LoginRequest{Email: "known@example.com", Password: "wrong-pass"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.True(t, utils.IsKind(errUnknown, utils.KindAuth))
	assert.True(t, utils.IsKind(errWrong, utils.KindAuth))
	assert.Equal(t, utils.PublicMessage(errUnknown, ""), utils.PublicMessage(errWrong, ""))
	assert.Equal(t, "Email ou mot de passe incorrect", utils.PublicMessage(errWrong, ""))
}

func TestAuthService_LoginCarriesRole(t *testing.T) {
	env := newTestEnv(t, false)
	admin := env.createUser(t, "admin@example.com", "adminpass", entity.RoleAdmin)

	resp, err := env.service.Auth.Login(context.Background(), &request.LoginRequest{Email: "admin@example.com", Password: "adminpass"})
	require.NoError(t, err)

	claims, err := env.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthService_Verify(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	resp, err := env.service.Auth.Register(ctx, &request.RegisterRequest{Email: "v@example.com", Password: "secret123"})
	require.NoError(t, err)

	user, err := env.service.Auth.Verify(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = env.service.Auth.Verify(ctx, "")
	assert.True(t, utils.IsKind(err, utils.KindAuth))

	_, err = env.service.Auth.Verify(ctx, "garbage")
	assert.True(t, utils.IsKind(err, utils.KindAuth))

	// valid signature, but the user no longer exists
	ghost, _, err := env.tokens.Generate(999, "ghost@example.com", "user")
	require.NoError(t, err)
	_, err = env.service.Auth.Verify(ctx, ghost)
	assert.True(t, utils.IsKind(err, utils.KindAuth))
	assert.Equal(t, "Utilisateur non trouvé", utils.PublicMessage(err, ""))
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	require.NoError(t, env.service.Auth.EnsureAdmin(ctx, "Boss@Example.com", "adminpass"))
	require.NoError(t, env.service.Auth.EnsureAdmin(ctx, "boss@example.com", "changed"))

	admin, err := env.repo.User.FindByEmail(ctx, "boss@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("adminpass", admin.PasswordHash), "existing admin is left untouched")

	count, err := env.repo.User.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
