package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
	repo "github.com/checkpass/checkpass-server/internal/domain/repository"
	"github.com/checkpass/checkpass-server/pkg/helpers"
)

var ErrUserNotFound = errors.New("user not found")

// UserService handles profile reads/updates, avatar uploads, and usage stats.
type UserService struct {
	Users      repo.UserRepository
	Checks     repo.CheckRepository
	GCS        *storage.Client
	GCSBucket  string
	Logger     *logrus.Logger
	CheckQuota int
}

func NewUserService(users repo.UserRepository, checks repo.CheckRepository, gcs *storage.Client,
	gcsBucket string, logger *logrus.Logger, checkQuota int) *UserService {
	return &UserService{
		Users:      users,
		Checks:     checks,
		GCS:        gcs,
		GCSBucket:  gcsBucket,
		Logger:     logger,
		CheckQuota: checkQuota,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile overwrites only the supplied fields; nil patch members leave
// the stored value alone. A vanished user maps to ErrUserNotFound; storage
// failures pass through untranslated.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch repo.ProfilePatch) (*entity.User, error) {
	u, err := s.Users.UpdateProfile(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UploadAvatar stores the image in GCS and points the profile at its public URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (*entity.User, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	return s.Users.UpdateProfile(ctx, userID, repo.ProfilePatch{Avatar: &url})
}

// Stats reports usage against the configured quota. Remaining never goes
// below zero even when the user is over quota.
func (s *UserService) Stats(ctx context.Context, userID string) (*entity.CheckStats, error) {
	total, last, err := s.Checks.StatsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	remaining := s.CheckQuota - total
	if remaining < 0 {
		remaining = 0
	}
	stats := &entity.CheckStats{TotalChecks: total, RemainingChecks: remaining}
	if last != nil {
		stats.LastCheckDate = &last.CreatedAt
	}
	return stats, nil
}
