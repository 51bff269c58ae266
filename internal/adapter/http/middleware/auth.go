package middleware

import (
	"net/http"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

// AuthResult is the outcome of resolving a request's session cookie.
type AuthResult struct {
	Principal     domain.Principal
	Authenticated bool
}

// Authorize resolves the session cookie named cookieName. A missing cookie is
// an unauthenticated result, not an error.
func Authorize(c *gin.Context, resolver ports.PrincipalResolver, cookieName string) (AuthResult, error) {
	sessionID, err := c.Cookie(cookieName)
	if err != nil || sessionID == "" {
		return AuthResult{}, nil
	}

	principal, ok, err := resolver.CurrentPrincipal(c.Request.Context(), sessionID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Principal: principal, Authenticated: ok}, nil
}

// RequireAuth aborts with 401 unless the request carries a live session.
func RequireAuth(resolver ports.PrincipalResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		result, err := Authorize(c, resolver, cookieName)
		if err != nil {
			zap.L().Error("failed to resolve session", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAuthCheck, lang),
			)
			return
		}
		if !result.Authenticated {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthRequired, lang),
			)
			return
		}

		c.Set(principalKey, result.Principal)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by RequireAuth.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}
