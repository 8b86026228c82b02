package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/checkpass/checkpass-server/internal/application"
	"github.com/checkpass/checkpass-server/pkg/response"
	"github.com/checkpass/checkpass-server/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type sendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

type googleLoginRequest struct {
	Credential string `json:"credential"`
}

// SendCode POST /api/auth/send-code
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.RequestCode(c.Request.Context(), req.Email); err != nil {
		h.Logger.WithError(err).WithField("email", req.Email).Error("send code failed")
		response.Err(c, http.StatusInternalServerError, "Failed to send verification code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// VerifyCode POST /api/auth/verify-code
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.CompleteCodeLogin(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTooManyAttempts):
			response.Err(c, http.StatusTooManyRequests, "Too many attempts, request a new code")
		case errors.Is(err, application.ErrInvalidOrExpiredCode):
			response.Err(c, http.StatusBadRequest, "Invalid or expired code")
		default:
			h.Logger.WithError(err).WithField("email", req.Email).Error("verify code failed")
			response.Err(c, http.StatusInternalServerError, "Failed to verify code")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}

// GoogleLogin POST /api/auth/google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.CompleteGoogleLogin(c.Request.Context(), req.Credential)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingCredential):
			response.Err(c, http.StatusBadRequest, "No credential")
		case errors.Is(err, application.ErrMissingEmailClaim):
			response.Err(c, http.StatusBadRequest, "Invalid Google token")
		case errors.Is(err, application.ErrInvalidAssertion):
			response.Err(c, http.StatusUnauthorized, "Google authentication failed")
		default:
			h.Logger.WithError(err).Error("google login failed")
			response.Err(c, http.StatusInternalServerError, "Google authentication failed")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}
