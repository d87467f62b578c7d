package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	userUc usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUc usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUc: userUc}
}

// Authenticate validates the bearer token and resolves its subject against
// the user store, so tokens for deleted accounts stop working immediately.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		principal, err := m.userUc.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// OptionalAuthenticate resolves a bearer token when one is present but lets
// anonymous requests through. Handlers that behave differently for elevated
// callers use it on otherwise public routes.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		if principal, err := m.userUc.Authenticate(c.Request().Context(), tokenString); err == nil {
			deliverycontext.SetPrincipal(c, principal)
		}

		return next(c)
	}
}

// RequireAdmin rejects requests whose principal is not an administrator.
// It must be used AFTER the Authenticate middleware; a missing principal
// here is a wiring mistake, not a client fault.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		if principal == nil {
			return errors.WithStack(domainerrors.ErrInternalError.WrapMessage("role guard invoked without a principal"))
		}

		if !principal.Role.Satisfies(entity.RoleAdmin) {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
		}

		return next(c)
	}
}
