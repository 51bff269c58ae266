package handlers

import (
	"errors"
	"net/http"
	"time"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/mapper"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieConfig controls the session cookie written on login.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	credentials, ok := h.bindCredentials(c, lang)
	if !ok {
		return
	}

	principal, session, err := h.authService.Register(c.Request.Context(), credentials)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUsernameTaken, lang),
			)
			return
		}
		respondError(c, lang, err, apierrors.MsgFailRegister)
		return
	}

	h.setSessionCookie(c, session.ID, h.cookie.MaxAge)
	c.JSON(http.StatusCreated, mapper.ToUserItem(principal))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	credentials, ok := h.bindCredentials(c, lang)
	if !ok {
		return
	}

	principal, session, err := h.authService.Login(c.Request.Context(), credentials)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}
		respondError(c, lang, err, apierrors.MsgFailLogin)
		return
	}

	h.setSessionCookie(c, session.ID, h.cookie.MaxAge)
	c.JSON(http.StatusOK, mapper.ToUserItem(principal))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)

	sessionID, _ := c.Cookie(h.cookie.Name)
	if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
		zap.L().Error("failed to logout", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogout, lang),
		)
		return
	}

	h.setSessionCookie(c, "", -time.Second)
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgLoggedOut, lang),
	})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	result, err := middleware.Authorize(c, h.authService, h.cookie.Name)
	if err != nil {
		zap.L().Error("failed to resolve session", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAuthCheck, lang),
		)
		return
	}
	if !result.Authenticated {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(result.Principal))
}

func (h *AuthHandler) bindCredentials(c *gin.Context, lang string) (domain.Credentials, bool) {
	raw, ok := bindObject(c, lang, apierrors.MsgInvalidAuthPayload)
	if !ok {
		return domain.Credentials{}, false
	}

	credentials, err := validation.BuildCredentials(raw)
	if err != nil {
		respondError(c, lang, err, apierrors.MsgInvalidAuthPayload)
		return domain.Credentials{}, false
	}
	return credentials, true
}

// setSessionCookie writes the session cookie. A negative maxAge deletes it.
func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge time.Duration) {
	seconds := int(maxAge / time.Second)
	if maxAge < 0 {
		seconds = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, seconds, "/", "", h.cookie.Secure, true)
}
