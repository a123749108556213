package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"circus-admin/internal/cache/mocks"
	"circus-admin/internal/middleware"
	"circus-admin/internal/model"
	"circus-admin/internal/security"
	servicemocks "circus-admin/internal/service/mocks"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const cookieName = "CIRCUS_SESSION"

func resolveRequest(t *testing.T, resolver *middleware.SessionResolver, req *http.Request) (*security.Principal, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return resolver.Resolve(c)
}

func TestSessionResolver(t *testing.T) {
	tokens := security.NewTokenIssuer("secret", time.Hour)
	boss := &security.Principal{UserID: 5, Email: "boss@example.com", Role: model.RoleBoss}
	bossUser := &model.User{ID: 5, Email: "boss@example.com", Role: model.RoleBoss}

	setup := func(t *testing.T) (*middleware.SessionResolver, *mocks.MockSessionStore, *servicemocks.MockUserService) {
		sessions := mocks.NewMockSessionStore(t)
		users := servicemocks.NewMockUserService(t)
		return middleware.NewSessionResolver(tokens, sessions, users, cookieName), sessions, users
	}

	t.Run("Bearer token", func(t *testing.T) {
		resolver, _, users := setup(t)
		token, err := tokens.Issue(boss)
		require.NoError(t, err)
		users.EXPECT().FindByID(mock.Anything, int64(5)).Return(bossUser, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		req.Header.Set("Authorization", "Bearer "+token.Token)

		principal, err := resolveRequest(t, resolver, req)
		require.NoError(t, err)
		assert.Equal(t, boss, principal)
	})

	t.Run("Bearer token of a demoted account carries the new role", func(t *testing.T) {
		resolver, _, users := setup(t)
		token, err := tokens.Issue(boss)
		require.NoError(t, err)
		users.EXPECT().FindByID(mock.Anything, int64(5)).
			Return(&model.User{ID: 5, Email: "boss@example.com", Role: model.RoleVisitor}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		req.Header.Set("Authorization", "Bearer "+token.Token)

		principal, err := resolveRequest(t, resolver, req)
		require.NoError(t, err)
		assert.Equal(t, model.RoleVisitor, principal.Role)
	})

	t.Run("Invalid bearer token is anonymous", func(t *testing.T) {
		resolver, sessions, users := setup(t)

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		req.Header.Set("Authorization", "Bearer forged")
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "abc"})

		principal, err := resolveRequest(t, resolver, req)
		require.NoError(t, err)
		assert.Nil(t, principal)
		sessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Session cookie", func(t *testing.T) {
		resolver, sessions, users := setup(t)
		sessions.EXPECT().Get(mock.Anything, "abc").Return(boss, nil).Once()
		users.EXPECT().FindByID(mock.Anything, int64(5)).Return(bossUser, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "abc"})

		principal, err := resolveRequest(t, resolver, req)
		require.NoError(t, err)
		assert.Equal(t, boss, principal)
	})

	t.Run("Session of a demoted super admin loses access", func(t *testing.T) {
		resolver, sessions, users := setup(t)
		admin := &security.Principal{UserID: 1, Email: "superadmin@example.com", Role: model.RoleSuperAdmin}
		sessions.EXPECT().Get(mock.Anything, "abc").Return(admin, nil).Once()
		users.EXPECT().FindByID(mock.Anything, int64(1)).
			Return(&model.User{ID: 1, Email: "superadmin@example.com", Role: model.RoleEmployee}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "abc"})

		principal, err := resolveRequest(t, resolver, req)
		require.NoError(t, err)
		assert.Equal(t, model.RoleEmployee, principal.Role)
		assert.Equal(t, security.DenyForbidden, security.DefaultPolicy().EvaluatePrincipal("/users", principal))
	})

	t.Run("Session of a deleted account is dropped", func(t *testing.T) {
		resolver, sessions, users := setup(t)
		sessions.EXPECT().Get(mock.Anything, "abc").Return(boss, nil).Once()
		users.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, apperrors.ErrUserNotFound).Once()
		sessions.EXPECT().Delete(mock.Anything, "abc").Return(nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "abc"})

		principal, err := resolveRequest(t, resolver, req)
		require.NoError(t, err)
		assert.Nil(t, principal)
	})

	t.Run("Expired session is anonymous", func(t *testing.T) {
		resolver, sessions, _ := setup(t)
		sessions.EXPECT().Get(mock.Anything, "gone").Return(nil, apperrors.ErrSessionNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "gone"})

		principal, err := resolveRequest(t, resolver, req)
		require.NoError(t, err)
		assert.Nil(t, principal)
	})

	t.Run("Store failure is reported", func(t *testing.T) {
		resolver, sessions, _ := setup(t)
		sessions.EXPECT().Get(mock.Anything, "abc").Return(nil, errors.New("redis down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "abc"})

		_, err := resolveRequest(t, resolver, req)
		assert.EqualError(t, err, "redis down")
	})

	t.Run("Account lookup failure is reported", func(t *testing.T) {
		resolver, sessions, users := setup(t)
		sessions.EXPECT().Get(mock.Anything, "abc").Return(boss, nil).Once()
		users.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "abc"})

		_, err := resolveRequest(t, resolver, req)
		assert.EqualError(t, err, "db down")
	})

	t.Run("No credentials", func(t *testing.T) {
		resolver, _, _ := setup(t)

		principal, err := resolveRequest(t, resolver, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Nil(t, principal)
	})
}
