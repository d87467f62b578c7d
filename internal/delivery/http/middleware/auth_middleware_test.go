package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.RegisterOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.LoginOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	args := m.Called(ctx, token)
	if principal := args.Get(0); principal != nil {
		return principal.(*entity.Principal), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) ListUsers(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	args := m.Called(ctx, input)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserUsecase) DeleteAccount(ctx context.Context, userID int64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid bearer token sets the principal", func(t *testing.T) {
		userUc := new(mockUserUsecase)
		userUc.On("Authenticate", mock.Anything, "good-token").
			Return(&entity.Principal{ID: 7, Role: entity.RoleCustomer}, nil)

		c, rec := newAuthTestContext(t, "Bearer good-token")

		var seen *entity.Principal
		err := NewAuthMiddleware(userUc).Authenticate(func(c echo.Context) error {
			seen = deliverycontext.GetPrincipal(c)

			return okHandler(c)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, int64(7), seen.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		userUc := new(mockUserUsecase)
		c, rec := newAuthTestContext(t, "")

		err := NewAuthMiddleware(userUc).Authenticate(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		userUc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
	})

	t.Run("header without bearer prefix", func(t *testing.T) {
		userUc := new(mockUserUsecase)
		c, rec := newAuthTestContext(t, "Basic abc123")

		err := NewAuthMiddleware(userUc).Authenticate(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		userUc := new(mockUserUsecase)
		userUc.On("Authenticate", mock.Anything, "bad-token").
			Return(nil, errors.New("invalid token"))

		c, rec := newAuthTestContext(t, "Bearer bad-token")

		err := NewAuthMiddleware(userUc).Authenticate(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		deliverycontext.SetPrincipal(c, &entity.Principal{ID: 1, Role: entity.RoleAdmin})

		err := NewAuthMiddleware(new(mockUserUsecase)).RequireAdmin(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		deliverycontext.SetPrincipal(c, &entity.Principal{ID: 7, Role: entity.RoleCustomer})

		err := NewAuthMiddleware(new(mockUserUsecase)).RequireAdmin(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no principal is a wiring error", func(t *testing.T) {
		c, _ := newAuthTestContext(t, "")

		err := NewAuthMiddleware(new(mockUserUsecase)).RequireAdmin(okHandler)(c)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("anonymous request passes through", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		err := NewAuthMiddleware(new(mockUserUsecase)).OptionalAuthenticate(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, deliverycontext.GetPrincipal(c))
	})

	t.Run("bad token is ignored, not rejected", func(t *testing.T) {
		userUc := new(mockUserUsecase)
		userUc.On("Authenticate", mock.Anything, "stale-token").
			Return(nil, errors.New("invalid token"))

		c, rec := newAuthTestContext(t, "Bearer stale-token")

		err := NewAuthMiddleware(userUc).OptionalAuthenticate(okHandler)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, deliverycontext.GetPrincipal(c))
	})
}
