package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/checkpass/checkpass-server/internal/application"
	"github.com/checkpass/checkpass-server/internal/domain/entity"
	repo "github.com/checkpass/checkpass-server/internal/domain/repository"
	"github.com/checkpass/checkpass-server/internal/infrastructure/google"
	"github.com/checkpass/checkpass-server/pkg/helpers"
)

type memUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
}

func (m *memUserRepo) FindOrCreate(_ context.Context, u *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.byEmail[u.Email]; ok {
		return existing, nil
	}
	stored := &entity.User{ID: "u-" + u.Email, Email: u.Email, Role: "user", CreatedAt: time.Now()}
	m.byEmail[u.Email] = stored
	return stored, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) UpdateProfile(_ context.Context, id string, patch repo.ProfilePatch) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID != id {
			continue
		}
		if patch.FirstName != nil {
			u.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			u.LastName = *patch.LastName
		}
		if patch.Phone != nil {
			u.Phone = *patch.Phone
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) TouchLastLogin(context.Context, string) error { return nil }

type memCodeRepo struct {
	mu    sync.Mutex
	codes map[string]string // email -> code
}

func (m *memCodeRepo) Create(_ context.Context, c *entity.VerificationCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[c.Email] = c.Code
	return nil
}

func (m *memCodeRepo) Consume(_ context.Context, email, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.codes[email] == code {
		delete(m.codes, email)
		return true, nil
	}
	return false, nil
}

type memSender struct {
	mu   sync.Mutex
	last string
	fail bool
}

func (m *memSender) SendVerificationCode(_ context.Context, _, code string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return context.DeadlineExceeded
	}
	m.last = code
	return nil
}

type memVerifier struct {
	claims *google.Claims
	err    error
}

func (m *memVerifier) Verify(context.Context, string) (*google.Claims, error) {
	return m.claims, m.err
}

type noLimiter struct{}

func (noLimiter) Bump(context.Context, string) (bool, error) { return true, nil }
func (noLimiter) Reset(context.Context, string)              {}

func newAuthTestServer(sender application.CodeSender, verifier application.IdentityVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	svc := application.NewAuthService(
		&memUserRepo{byEmail: map[string]*entity.User{}},
		&memCodeRepo{codes: map[string]string{}},
		sender,
		verifier,
		helpers.NewJWTManager("test-secret", time.Hour),
		noLimiter{},
		nil,
		logger,
		10*time.Minute,
	)
	h := NewAuthHandler(svc, logger)
	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/send-code", h.SendCode)
	auth.POST("/verify-code", h.VerifyCode)
	auth.POST("/google", h.GoogleLogin)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSendCode_OK(t *testing.T) {
	sender := &memSender{}
	r := newAuthTestServer(sender, &memVerifier{})

	w := postJSON(r, "/api/auth/send-code", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Verification code sent")
	require.Len(t, sender.last, 6)
}

func TestSendCode_InvalidEmail(t *testing.T) {
	r := newAuthTestServer(&memSender{}, &memVerifier{})
	w := postJSON(r, "/api/auth/send-code", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendCode_DispatchFailure(t *testing.T) {
	r := newAuthTestServer(&memSender{fail: true}, &memVerifier{})
	w := postJSON(r, "/api/auth/send-code", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to send verification code")
}

func TestVerifyCode_RoundTrip(t *testing.T) {
	sender := &memSender{}
	r := newAuthTestServer(sender, &memVerifier{})

	w := postJSON(r, "/api/auth/send-code", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/api/auth/verify-code", `{"email":"a@x.com","code":"`+sender.last+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		User  entity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "a@x.com", resp.User.Email)
}

func TestVerifyCode_WrongCode(t *testing.T) {
	sender := &memSender{}
	r := newAuthTestServer(sender, &memVerifier{})

	postJSON(r, "/api/auth/send-code", `{"email":"a@x.com"}`)
	w := postJSON(r, "/api/auth/verify-code", `{"email":"a@x.com","code":"000000"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid or expired code")
}

func TestGoogleLogin_MissingCredential(t *testing.T) {
	r := newAuthTestServer(&memSender{}, &memVerifier{})
	w := postJSON(r, "/api/auth/google", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "No credential")
}

func TestGoogleLogin_ProviderFailure(t *testing.T) {
	r := newAuthTestServer(&memSender{}, &memVerifier{err: context.DeadlineExceeded})
	w := postJSON(r, "/api/auth/google", `{"credential":"tok"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleLogin_OK(t *testing.T) {
	verifier := &memVerifier{claims: &google.Claims{Email: "g@x.com", GivenName: "G"}}
	r := newAuthTestServer(&memSender{}, verifier)

	w := postJSON(r, "/api/auth/google", `{"credential":"tok"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		User  entity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "g@x.com", resp.User.Email)
}
