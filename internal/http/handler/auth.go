package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/dto"
	"masteria.app/panel/internal/service"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService  service.AuthService
	resetService service.PasswordResetService
	cookie       CookieConfig
}

func NewAuthHandler(authService service.AuthService, resetService service.PasswordResetService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		resetService: resetService,
		cookie:       cookie,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.authService.Register(ctx, service.RegisterParams{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered", "code": "email_taken"})
			return
		}
		respondError(c, err, "register")
		return
	}

	h.setSessionCookie(c, session.Token, session.ExpiresAt)
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		case errors.Is(err, service.ErrUserInactive):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user is inactive", "code": "user_inactive"})
		default:
			respondError(c, err, "log in")
		}
		return
	}

	h.setSessionCookie(c, session.Token, session.ExpiresAt)
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Logout only clears the cookie; tokens are stateless and expire on their own.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, company, err := h.authService.Me(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, err, "load session")
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		User:    dto.ToUserResponse(user),
		Company: dto.ToCompanyResponse(company),
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetService.RequestReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "request password reset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "if the email is registered, a reset link has been sent"})
}

func (h *AuthHandler) ValidateResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.resetService.ValidateToken(c.Request.Context(), token); err != nil {
		h.respondResetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetService.ResetPassword(ctx, req.Token, req.Password); err != nil {
		h.respondResetError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *AuthHandler) respondResetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrResetTokenNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "reset token not found", "code": "token_not_found"})
	case errors.Is(err, service.ErrResetTokenUsed):
		c.JSON(http.StatusGone, gin.H{"error": "reset token already used", "code": "token_used"})
	case errors.Is(err, service.ErrResetTokenExpired):
		c.JSON(http.StatusGone, gin.H{"error": "reset token expired", "code": "token_expired"})
	default:
		respondError(c, err, "reset password")
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cookie.Name,
		token,
		int(time.Until(expiresAt).Seconds()),
		"/",
		"",
		h.cookie.Secure,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
