package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skanda2852b/payrollmanagement/internal/config"
	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/middleware"
	"github.com/Skanda2852b/payrollmanagement/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Login godoc
// @Summary Authenticate with email + password; sets the token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apierror.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, tok, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, tok)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

// Register creates an account and logs it in immediately (cookie set), the
// same flow the login endpoint uses.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, tok, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, tok)
	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "user": user})
}

// Logout clears the token cookie. The token itself stays valid until expiry
// (no revocation list); the client just forgets it.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", h.cfg.CookieDomain, h.secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, tok string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, tok, h.cfg.TokenTTLHours*3600, "/", h.cfg.CookieDomain, h.secureCookies(), true)
}

func (h *AuthHandler) secureCookies() bool {
	return h.cfg.Env == "production"
}
