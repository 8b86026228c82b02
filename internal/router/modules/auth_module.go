package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/checkpass/checkpass-server/internal/interface/http"
)

// AuthModule registers the public authentication routes:
// POST /api/auth/send-code, POST /api/auth/verify-code, POST /api/auth/google
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/send-code", m.Handler.SendCode)
		auth.POST("/verify-code", m.Handler.VerifyCode)
		auth.POST("/google", m.Handler.GoogleLogin)
	}
}
