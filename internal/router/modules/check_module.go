package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/checkpass/checkpass-server/internal/interface/http"
	"github.com/checkpass/checkpass-server/internal/interface/middleware"
	"github.com/checkpass/checkpass-server/pkg/helpers"
)

// CheckModule wires the authenticated check-record routes.
type CheckModule struct {
	Handler *handlers.CheckHandler
	JWT     *helpers.JWTManager
}

func NewCheckModule(h *handlers.CheckHandler, jwt *helpers.JWTManager) *CheckModule {
	return &CheckModule{Handler: h, JWT: jwt}
}

func (m *CheckModule) Register(rg *gin.RouterGroup) {
	check := rg.Group("/check")
	check.Use(middleware.Auth(m.JWT))
	{
		check.GET("", m.Handler.List)
		check.POST("", m.Handler.Create)
	}
}
