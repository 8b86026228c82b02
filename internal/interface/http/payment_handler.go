package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/checkpass/checkpass-server/internal/infrastructure/sbp"
	"github.com/checkpass/checkpass-server/pkg/response"
	"github.com/checkpass/checkpass-server/pkg/validation"
)

type PaymentHandler struct {
	Gateway *sbp.Client
	Logger  *logrus.Logger
}

func NewPaymentHandler(gateway *sbp.Client, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Gateway: gateway, Logger: logger}
}

type sbpPaymentRequest struct {
	Amount        float64        `json:"amount" binding:"required,gt=0"`
	Description   string         `json:"description"`
	ClientBackURL string         `json:"clientBackUrl"`
	UserIP        string         `json:"userIp"`
	UserInfo      map[string]any `json:"userInfo"`
}

// CreateSBP POST /api/payment/sbp — passes the transaction through to the
// gateway and returns its response body untouched.
func (h *PaymentHandler) CreateSBP(c *gin.Context) {
	var req sbpPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	userIP := req.UserIP
	if userIP == "" {
		userIP = c.GetString("real_ip")
	}
	raw, err := h.Gateway.CreateTransaction(c.Request.Context(), sbp.CreateTransactionInput{
		Amount:        req.Amount,
		Description:   req.Description,
		ClientBackURL: req.ClientBackURL,
		UserIP:        userIP,
		UserInfo:      req.UserInfo,
	})
	if err != nil {
		h.Logger.WithError(err).Error("sbp transaction failed")
		response.Err(c, http.StatusInternalServerError, "Payment initiation failed")
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
