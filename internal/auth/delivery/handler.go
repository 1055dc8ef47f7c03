package delivery

import (
	"net/http"

	authdto "dietdiary-backend/internal/auth/dto"
	"dietdiary-backend/internal/auth/usecase"
	"dietdiary-backend/pkg/apperror"
	"dietdiary-backend/pkg/httpx"

	"github.com/gin-gonic/gin"
)

// CookieSettings controls the token cookie set on login
type CookieSettings struct {
	MaxAge int // seconds
	Secure bool
}

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	cookie      CookieSettings
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cookie:      cookie,
	}
}

// Register creates an account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperror.Validation("Please provide a name, a valid email and a password of at least 6 characters"))
		return
	}

	res, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, authdto.RegisterResponse{
		Success: true,
		Token:   res.Token,
		Data:    res.User.Summary(),
	})
}

// Login issues a token and mirrors it in an httpOnly cookie
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, apperror.Validation(usecase.MsgMissingCredentials))
		return
	}

	res, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, res.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, authdto.LoginResponse{
		Success:  true,
		Username: res.User.Name,
		Token:    res.Token,
	})
}

// Me returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.Me(c.Request.Context(), UserIDFromContext(c))
	if err != nil {
		httpx.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.MeResponse{Success: true, Data: user})
}

// Logout clears the token cookie. The token itself stays valid until it expires.
// GET /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookie, "", -1, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, authdto.LogoutResponse{
		Success: true,
		Message: "Cookie successfully deleted.",
	})
}
