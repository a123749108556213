package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"circus-admin/config"
	cachemocks "circus-admin/internal/cache/mocks"
	"circus-admin/internal/handler"
	"circus-admin/internal/model"
	"circus-admin/internal/security"
	"circus-admin/internal/service/mocks"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAuthConfig = config.AuthConfig{
	JWTSecret:     "test-secret",
	AccessTTLMin:  5,
	SessionTTLMin: 5,
	BcryptCost:    4,
	SessionCookie: "CIRCUS_SESSION",
}

func setupAuthTestRouter(t *testing.T) (*gin.Engine, *mocks.MockUserService, *cachemocks.MockSessionStore, *security.TokenIssuer) {
	users := mocks.NewMockUserService(t)
	sessions := cachemocks.NewMockSessionStore(t)
	tokens := security.NewTokenIssuer(testAuthConfig.JWTSecret, time.Minute)
	r := setupTestRouter(nil, handler.NewAuthHandler(users, sessions, tokens, testAuthConfig))
	return r, users, sessions, tokens
}

func TestLogin(t *testing.T) {
	user := &model.User{ID: 3, Email: "user@example.com", Role: model.RoleVisitor}

	t.Run("Success", func(t *testing.T) {
		r, users, sessions, _ := setupAuthTestRouter(t)

		users.EXPECT().Authenticate(mock.Anything, "user@example.com", "password").Return(user, nil).Once()
		sessions.EXPECT().Create(mock.Anything, security.NewPrincipal(user)).Return("tok-123", nil).Once()

		w := perform(r, createFormHTTPRequest("/login", url.Values{"email": {"user@example.com"}, "password": {"password"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/performances", w.Header().Get("Location"))
		cookie := w.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "CIRCUS_SESSION=tok-123")
		assert.Contains(t, cookie, "HttpOnly")
	})

	t.Run("Failed - bad credentials", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		users.EXPECT().Authenticate(mock.Anything, "user@example.com", "wrong").Return(nil, apperrors.ErrInvalidCredentials).Once()

		w := perform(r, createFormHTTPRequest("/login", url.Values{"email": {"user@example.com"}, "password": {"wrong"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?error", w.Header().Get("Location"))
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("Login page", func(t *testing.T) {
		r, _, _, _ := setupAuthTestRouter(t)

		w := perform(r, httptest.NewRequest(http.MethodGet, "/login?error", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password.")
	})
}

func TestLogout(t *testing.T) {
	r, _, sessions, _ := setupAuthTestRouter(t)

	sessions.EXPECT().Delete(mock.Anything, "tok-123").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "CIRCUS_SESSION", Value: "tok-123"})
	w := perform(r, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?logout", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		users.EXPECT().Register(mock.Anything, "new@example.com", "pw").Return(&model.User{ID: 9}, nil).Once()

		w := perform(r, createFormHTTPRequest("/register", url.Values{"email": {"new@example.com"}, "password": {"pw"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?registered", w.Header().Get("Location"))
	})

	t.Run("Failed - duplicate email re-renders the form", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		users.EXPECT().Register(mock.Anything, "user@example.com", "pw").Return(nil, apperrors.ErrEmailAlreadyExists).Once()

		w := perform(r, createFormHTTPRequest("/register", url.Values{"email": {"user@example.com"}, "password": {"pw"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "email already registered")
		assert.Contains(t, w.Body.String(), `value="user@example.com"`)
	})

	t.Run("Failed - password too long re-renders the form", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		long := strings.Repeat("a", 80)
		users.EXPECT().Register(mock.Anything, "long@example.com", long).Return(nil, security.ErrPasswordTooLong).Once()

		w := perform(r, createFormHTTPRequest("/register", url.Values{"email": {"long@example.com"}, "password": {long}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "password must be at most 72 bytes")
	})

	t.Run("Failed - missing email", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		w := perform(r, createFormHTTPRequest("/register", url.Values{"password": {"pw"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "email is required")
		users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAPILogin(t *testing.T) {
	user := &model.User{ID: 1, Email: "superadmin@example.com", Role: model.RoleSuperAdmin}

	t.Run("Success", func(t *testing.T) {
		r, users, _, tokens := setupAuthTestRouter(t)

		users.EXPECT().Authenticate(mock.Anything, "superadmin@example.com", "password").Return(user, nil).Once()

		w := perform(r, createJSONHTTPRequest(http.MethodPost, "/api/auth/login", handler.CredentialsForm{
			Email: "superadmin@example.com", Password: "password",
		}))
		require.Equal(t, http.StatusOK, w.Code)

		var resp handler.LoginResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "superadmin@example.com", resp.User.Email)

		principal, err := tokens.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, security.NewPrincipal(user), principal)
	})

	t.Run("Failed - bad credentials", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		users.EXPECT().Authenticate(mock.Anything, "superadmin@example.com", "x").Return(nil, apperrors.ErrInvalidCredentials).Once()

		w := perform(r, createJSONHTTPRequest(http.MethodPost, "/api/auth/login", handler.CredentialsForm{
			Email: "superadmin@example.com", Password: "x",
		}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]string
		decodeJSON(t, w, &body)
		assert.Equal(t, "Unauthorized", body["error"])
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		w := perform(r, createJSONHTTPRequest(http.MethodPost, "/api/auth/login", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		users.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAPIRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		users.EXPECT().Register(mock.Anything, "new@example.com", "pw").
			Return(&model.User{ID: 9, Email: "new@example.com", Password: "$2a$hash", Role: model.RoleVisitor}, nil).Once()

		w := perform(r, createJSONHTTPRequest(http.MethodPost, "/api/auth/register", handler.CredentialsForm{
			Email: "new@example.com", Password: "pw",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "$2a$hash")
	})

	t.Run("Failed - duplicate", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		users.EXPECT().Register(mock.Anything, "user@example.com", "pw").Return(nil, apperrors.ErrEmailAlreadyExists).Once()

		w := perform(r, createJSONHTTPRequest(http.MethodPost, "/api/auth/register", handler.CredentialsForm{
			Email: "user@example.com", Password: "pw",
		}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - password too long", func(t *testing.T) {
		r, users, _, _ := setupAuthTestRouter(t)

		long := strings.Repeat("a", 80)
		users.EXPECT().Register(mock.Anything, "long@example.com", long).Return(nil, security.ErrPasswordTooLong).Once()

		w := perform(r, createJSONHTTPRequest(http.MethodPost, "/api/auth/register", handler.CredentialsForm{
			Email: "long@example.com", Password: long,
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]string
		decodeJSON(t, w, &body)
		assert.Equal(t, security.ErrPasswordTooLong.Error(), body["error"])
	})

	t.Run("Failed - missing email", func(t *testing.T) {
		r, _, _, _ := setupAuthTestRouter(t)

		w := perform(r, createJSONHTTPRequest(http.MethodPost, "/api/auth/register", map[string]string{"password": "pw"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]string
		decodeJSON(t, w, &body)
		assert.Equal(t, "email is required", body["error"])
	})
}

func TestHomeRedirect(t *testing.T) {
	r := setupTestRouter(as(model.RoleVisitor), handler.NewAuthHandler(nil, nil, nil, testAuthConfig))

	w := perform(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/performances", w.Header().Get("Location"))
}
