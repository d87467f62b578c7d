package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(
	userRepo *mockUserRepository,
	credentialRepo *mockCredentialRepository,
	hasher *mockPasswordHasher,
	tokenService *mockTokenService,
) usecase.UserUsecase {
	factory := &stubRepoFactory{users: userRepo, credentials: credentialRepo}

	return NewUserService(UserServiceParams{
		TxManager:      &stubTxManager{factory: factory},
		UserRepo:       userRepo,
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newDiscardLogger(),
	})
}

func TestUserService_RegisterUser(t *testing.T) {
	userRepo := new(mockUserRepository)
	credentialRepo := new(mockCredentialRepository)
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)
	svc := newUserServiceForTest(userRepo, credentialRepo, hasher, tokenService)

	ctx := context.Background()

	hasher.On("Hash", "secret123").Return("hashed-secret", nil)
	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 7
		}).
		Return(nil)
	credentialRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.UserID == 7 && c.PasswordHash == "hashed-secret"
	})).Return(nil)

	out, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)

	userRepo.AssertExpectations(t)
	credentialRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	credentialRepo := new(mockCredentialRepository)
	hasher := new(mockPasswordHasher)
	svc := newUserServiceForTest(userRepo, credentialRepo, hasher, new(mockTokenService))

	ctx := context.Background()

	hasher.On("Hash", "secret123").Return("hashed-secret", nil)
	userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: 1, Email: "alice@example.com"}, nil)

	out, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	svc := newUserServiceForTest(userRepo, new(mockCredentialRepository), hasher, new(mockTokenService))

	hasher.On("Hash", "secret123").Return("", errors.New("bcrypt blew up"))

	out, err := svc.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	userRepo := new(mockUserRepository)
	credentialRepo := new(mockCredentialRepository)
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)
	svc := newUserServiceForTest(userRepo, credentialRepo, hasher, tokenService)

	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "alice@example.com", Role: entity.RoleCustomer}

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	credentialRepo.On("FindByUserID", ctx, int64(7)).
		Return(&entity.Credential{UserID: 7, PasswordHash: "hashed-secret"}, nil)
	hasher.On("Check", "secret123", "hashed-secret").Return(true)
	tokenService.On("Issue", int64(7), "alice@example.com").Return("signed-token", nil)

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		svc := newUserServiceForTest(userRepo, new(mockCredentialRepository), new(mockPasswordHasher), new(mockTokenService))

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		out, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		credentialRepo := new(mockCredentialRepository)
		hasher := new(mockPasswordHasher)
		tokenService := new(mockTokenService)
		svc := newUserServiceForTest(userRepo, credentialRepo, hasher, tokenService)

		userRepo.On("FindByEmail", ctx, "alice@example.com").
			Return(&entity.User{ID: 7, Email: "alice@example.com"}, nil)
		credentialRepo.On("FindByUserID", ctx, int64(7)).
			Return(&entity.Credential{UserID: 7, PasswordHash: "hashed-secret"}, nil)
		hasher.On("Check", "wrong", "hashed-secret").Return(false)

		out, err := svc.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
		assert.Nil(t, out)
		// Same error as the unknown-email case, so callers can't probe emails.
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token with live subject", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenService := new(mockTokenService)
		svc := newUserServiceForTest(userRepo, new(mockCredentialRepository), new(mockPasswordHasher), tokenService)

		tokenService.On("Verify", "good-token").
			Return(&service.Claims{UserID: 7, Email: "alice@example.com"}, nil)
		userRepo.On("FindByID", ctx, int64(7)).
			Return(&entity.User{ID: 7, Email: "alice@example.com", Name: "Alice", Role: entity.RoleAdmin}, nil)

		principal, err := svc.Authenticate(ctx, "good-token")
		require.NoError(t, err)
		assert.Equal(t, int64(7), principal.ID)
		assert.Equal(t, entity.RoleAdmin, principal.Role)
	})

	t.Run("bad token", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenService := new(mockTokenService)
		svc := newUserServiceForTest(userRepo, new(mockCredentialRepository), new(mockPasswordHasher), tokenService)

		tokenService.On("Verify", "bad-token").Return(nil, errors.New("invalid token"))

		principal, err := svc.Authenticate(ctx, "bad-token")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("subject deleted after issuance", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenService := new(mockTokenService)
		svc := newUserServiceForTest(userRepo, new(mockCredentialRepository), new(mockPasswordHasher), tokenService)

		tokenService.On("Verify", "orphan-token").
			Return(&service.Claims{UserID: 99}, nil)
		userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

		principal, err := svc.Authenticate(ctx, "orphan-token")
		assert.Nil(t, principal)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := newUserServiceForTest(userRepo, new(mockCredentialRepository), new(mockPasswordHasher), new(mockTokenService))

	ctx := context.Background()
	userRepo.On("FindByID", ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUser(ctx, 42)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	userRepo := new(mockUserRepository)
	credentialRepo := new(mockCredentialRepository)
	hasher := new(mockPasswordHasher)
	svc := newUserServiceForTest(userRepo, credentialRepo, hasher, new(mockTokenService))

	ctx := context.Background()

	hasher.On("Hash", "newsecret1").Return("new-hash", nil)
	userRepo.On("FindByID", ctx, int64(7)).
		Return(&entity.User{ID: 7, Name: "Alice", Email: "alice@example.com"}, nil)
	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == 7 && u.Name == "Alicia" && u.Email == "alicia@example.com"
	})).Return(nil)
	credentialRepo.On("Update", ctx, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.UserID == 7 && c.PasswordHash == "new-hash"
	})).Return(nil)

	user, err := svc.UpdateProfile(ctx, 7, &usecase.UpdateProfileInput{
		Name:     "Alicia",
		Email:    "alicia@example.com",
		Password: "newsecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.Name)
	assert.Equal(t, "alicia@example.com", user.Email)

	userRepo.AssertExpectations(t)
	credentialRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_DuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	credentialRepo := new(mockCredentialRepository)
	hasher := new(mockPasswordHasher)
	svc := newUserServiceForTest(userRepo, credentialRepo, hasher, new(mockTokenService))

	ctx := context.Background()

	hasher.On("Hash", "newsecret1").Return("new-hash", nil)
	userRepo.On("FindByID", ctx, int64(7)).
		Return(&entity.User{ID: 7, Name: "Alice", Email: "alice@example.com"}, nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	user, err := svc.UpdateProfile(ctx, 7, &usecase.UpdateProfileInput{
		Name:     "Alice",
		Email:    "taken@example.com",
		Password: "newsecret1",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	credentialRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_DeleteAccount(t *testing.T) {
	userRepo := new(mockUserRepository)
	credentialRepo := new(mockCredentialRepository)
	svc := newUserServiceForTest(userRepo, credentialRepo, new(mockPasswordHasher), new(mockTokenService))

	ctx := context.Background()
	existing := &entity.User{ID: 7, Name: "Alice", Email: "alice@example.com"}

	userRepo.On("FindByID", ctx, int64(7)).Return(existing, nil)
	credentialRepo.On("DeleteByUserID", ctx, int64(7)).Return(nil)
	userRepo.On("Delete", ctx, int64(7)).Return(nil)

	user, err := svc.DeleteAccount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, existing, user)

	userRepo.AssertExpectations(t)
	credentialRepo.AssertExpectations(t)
}

func TestUserService_DeleteAccount_UnknownUser(t *testing.T) {
	userRepo := new(mockUserRepository)
	credentialRepo := new(mockCredentialRepository)
	svc := newUserServiceForTest(userRepo, credentialRepo, new(mockPasswordHasher), new(mockTokenService))

	ctx := context.Background()
	userRepo.On("FindByID", ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	user, err := svc.DeleteAccount(ctx, 42)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	credentialRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_ListUsers_Pagination(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := newUserServiceForTest(userRepo, new(mockCredentialRepository), new(mockPasswordHasher), new(mockTokenService))

	ctx := context.Background()
	expected := []*entity.User{{ID: 21}, {ID: 22}}

	// Page 3 with limit 10 skips the first 20 rows.
	userRepo.On("List", ctx, 20, 10).Return(expected, nil)

	users, err := svc.ListUsers(ctx, &usecase.ListUsersInput{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}
