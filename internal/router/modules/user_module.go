package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/checkpass/checkpass-server/internal/interface/http"
	"github.com/checkpass/checkpass-server/internal/interface/middleware"
	"github.com/checkpass/checkpass-server/pkg/helpers"
)

// UserModule wires the authenticated profile and stats routes.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(middleware.Auth(m.JWT))
	{
		user.GET("/profile", m.Handler.GetProfile)
		user.PUT("/profile", m.Handler.UpdateProfile)
		user.POST("/avatar", m.Handler.UploadAvatar)
		user.GET("/stats", m.Handler.Stats)
	}
}
