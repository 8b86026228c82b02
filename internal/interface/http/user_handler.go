package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/checkpass/checkpass-server/internal/application"
	repo "github.com/checkpass/checkpass-server/internal/domain/repository"
	"github.com/checkpass/checkpass-server/pkg/response"
	"github.com/checkpass/checkpass-server/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone" binding:"omitempty,phone"`
	Avatar    *string `json:"avatar" binding:"omitempty,url"`
}

// GetProfile GET /api/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("get profile failed")
		response.Err(c, http.StatusInternalServerError, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile PUT /api/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, repo.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Avatar:    req.Avatar,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Err(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", uid).Error("update profile failed")
		response.Err(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UploadAvatar POST /api/user/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString("userID")
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Err(c, http.StatusBadRequest, "missing avatar file")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Err(c, http.StatusBadRequest, "unreadable avatar file")
		return
	}
	defer func() { _ = f.Close() }()

	u, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("avatar upload failed")
		response.Err(c, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar": u.Avatar})
}

// Stats GET /api/user/stats
func (h *UserHandler) Stats(c *gin.Context) {
	uid := c.GetString("userID")
	stats, err := h.Svc.Stats(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", uid).Error("stats query failed")
		response.Err(c, http.StatusInternalServerError, "Failed to get stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
