package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
	repo "github.com/checkpass/checkpass-server/internal/domain/repository"
)

type fakeCheckRepo struct {
	checks []*entity.Check
}

func (f *fakeCheckRepo) Create(_ context.Context, c *entity.Check) error {
	c.ID = "c-" + time.Now().Format("150405.000000000")
	c.CreatedAt = time.Now()
	f.checks = append(f.checks, c)
	return nil
}

func (f *fakeCheckRepo) ListByUser(_ context.Context, userID string) ([]*entity.Check, error) {
	out := make([]*entity.Check, 0)
	for i := len(f.checks) - 1; i >= 0; i-- {
		if f.checks[i].UserID == userID {
			out = append(out, f.checks[i])
		}
	}
	return out, nil
}

func (f *fakeCheckRepo) StatsByUser(_ context.Context, userID string) (int, *entity.Check, error) {
	var total int
	var last *entity.Check
	for _, c := range f.checks {
		if c.UserID != userID {
			continue
		}
		total++
		if last == nil || c.CreatedAt.After(last.CreatedAt) {
			last = c
		}
	}
	return total, last, nil
}

func seedUser(t *testing.T, users *fakeUserRepo, email string) *entity.User {
	t.Helper()
	u, err := users.FindOrCreate(context.Background(), &entity.User{Email: email})
	require.NoError(t, err)
	return u
}

func TestUpdateProfile_PartialPatch(t *testing.T) {
	users := newFakeUserRepo()
	u := seedUser(t, users, "a@x.com")
	first := "Ada"
	_, err := users.UpdateProfile(context.Background(), u.ID, repo.ProfilePatch{FirstName: &first})
	require.NoError(t, err)

	svc := NewUserService(users, &fakeCheckRepo{}, nil, "", nil, 200)

	phone := "+1234567890"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, repo.ProfilePatch{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "+1234567890", updated.Phone)
	require.Equal(t, "Ada", updated.FirstName)
	require.Equal(t, "a@x.com", updated.Email)
}

type failingUserRepo struct {
	*fakeUserRepo
	err error
}

func (f *failingUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, f.err
}

func (f *failingUserRepo) UpdateProfile(context.Context, string, repo.ProfilePatch) (*entity.User, error) {
	return nil, f.err
}

func TestGetProfile_StorageErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection refused")
	users := &failingUserRepo{fakeUserRepo: newFakeUserRepo(), err: boom}
	svc := NewUserService(users, &fakeCheckRepo{}, nil, "", nil, 200)

	_, err := svc.GetProfile(context.Background(), "u-1")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateProfile(context.Background(), "u-1", repo.ProfilePatch{})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeCheckRepo{}, nil, "", nil, 200)
	phone := "+1234567890"
	_, err := svc.UpdateProfile(context.Background(), "missing", repo.ProfilePatch{Phone: &phone})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestStats_Empty(t *testing.T) {
	users := newFakeUserRepo()
	u := seedUser(t, users, "a@x.com")
	svc := NewUserService(users, &fakeCheckRepo{}, nil, "", nil, 200)

	stats, err := svc.Stats(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalChecks)
	require.Equal(t, 200, stats.RemainingChecks)
	require.Nil(t, stats.LastCheckDate)
}

func TestStats_RemainingClampsAtZero(t *testing.T) {
	users := newFakeUserRepo()
	u := seedUser(t, users, "a@x.com")
	checks := &fakeCheckRepo{}
	for i := 0; i < 3; i++ {
		require.NoError(t, checks.Create(context.Background(), &entity.Check{UserID: u.ID, Type: "inn", Status: "done"}))
	}
	svc := NewUserService(users, checks, nil, "", nil, 2)

	stats, err := svc.Stats(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalChecks)
	require.Equal(t, 0, stats.RemainingChecks)
	require.NotNil(t, stats.LastCheckDate)
}
