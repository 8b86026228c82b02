package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/checkpass/checkpass-server/internal/interface/http"
)

// PaymentModule wires the SBP payment-initiation proxy. The route is public:
// the gateway does its own client validation, matching the original flow
// where payment can start before login completes.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
}

func NewPaymentModule(h *handlers.PaymentHandler) *PaymentModule {
	return &PaymentModule{Handler: h}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	rg.POST("/payment/sbp", m.Handler.CreateSBP)
}
