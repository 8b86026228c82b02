package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/checkpass/checkpass-server/internal/application"
	"github.com/checkpass/checkpass-server/pkg/response"
	"github.com/checkpass/checkpass-server/pkg/validation"
)

type CheckHandler struct {
	Svc    *application.CheckService
	Logger *logrus.Logger
}

func NewCheckHandler(svc *application.CheckService, logger *logrus.Logger) *CheckHandler {
	return &CheckHandler{Svc: svc, Logger: logger}
}

type createCheckRequest struct {
	Type   string          `json:"type" binding:"required"`
	Status string          `json:"status" binding:"required"`
	Result json.RawMessage `json:"result"`
}

// List GET /api/check
func (h *CheckHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	checks, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("list checks failed")
		response.Err(c, http.StatusInternalServerError, "Failed to get checks")
		return
	}
	c.JSON(http.StatusOK, checks)
}

// Create POST /api/check
func (h *CheckHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	check, err := h.Svc.Create(c.Request.Context(), uid, req.Type, req.Status, req.Result)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("create check failed")
		response.Err(c, http.StatusInternalServerError, "Failed to create check")
		return
	}
	c.JSON(http.StatusOK, check)
}
