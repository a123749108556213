package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

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

func setupUserTestRouter(t *testing.T, principal *security.Principal) (*gin.Engine, *mocks.MockUserService) {
	users := mocks.NewMockUserService(t)
	return setupTestRouter(principal, handler.NewUserHandler(users)), users
}

func TestUserPages(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().List(mock.Anything).Return([]*model.User{
			{ID: 1, Email: "superadmin@example.com", Role: model.RoleSuperAdmin},
			{ID: 3, Email: "user@example.com", Role: model.RoleVisitor},
		}, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/users?msg=hello", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "user@example.com")
		assert.Contains(t, body, "hello")
	})

	t.Run("Employee is denied", func(t *testing.T) {
		r, _ := setupUserTestRouter(t, as(model.RoleEmployee))

		w := perform(r, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/access-denied", w.Header().Get("Location"))
	})

	t.Run("Change role", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().ChangeRole(mock.Anything, int64(3), model.RoleBoss).
			Return(&model.User{ID: 3, Email: "user@example.com", Role: model.RoleBoss}, nil).Once()

		w := perform(r, createFormHTTPRequest("/users/change-role", url.Values{"userId": {"3"}, "role": {"BOSS"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users?msg="+url.QueryEscape("role of user@example.com changed to BOSS"), w.Header().Get("Location"))
	})

	t.Run("Change role of unknown user", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().ChangeRole(mock.Anything, int64(99), model.RoleBoss).Return(nil, apperrors.ErrUserNotFound).Once()

		w := perform(r, createFormHTTPRequest("/users/change-role", url.Values{"userId": {"99"}, "role": {"BOSS"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users?msg=user+not+found", w.Header().Get("Location"))
	})

	t.Run("Change to an invalid role", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().ChangeRole(mock.Anything, int64(3), model.Role("KING")).Return(nil, apperrors.ErrInvalidRole).Once()

		w := perform(r, createFormHTTPRequest("/users/change-role", url.Values{"userId": {"3"}, "role": {"KING"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users?msg="+url.QueryEscape("invalid role: KING"), w.Header().Get("Location"))
	})

	t.Run("Delete", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().FindByID(mock.Anything, int64(3)).Return(&model.User{ID: 3, Email: "user@example.com"}, nil).Once()
		users.EXPECT().Delete(mock.Anything, int64(3)).Return(nil).Once()

		w := perform(r, createFormHTTPRequest("/users/delete", url.Values{"userId": {"3"}}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/users?msg="+url.QueryEscape("user user@example.com deleted"), w.Header().Get("Location"))
	})

	t.Run("Save with invalid role re-renders the form", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidRole).Once()

		w := perform(r, createFormHTTPRequest("/users/save", url.Values{
			"id": {"3"}, "email": {"user@example.com"}, "role": {"KING"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "invalid role")
	})
}

func TestUserAPI(t *testing.T) {
	t.Run("List hides password hashes", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().List(mock.Anything).Return([]*model.User{
			{ID: 3, Email: "user@example.com", Password: "$2a$10$secret", Role: model.RoleVisitor},
		}, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user@example.com")
		assert.NotContains(t, w.Body.String(), "$2a$10$secret")
	})

	t.Run("Change role", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().ChangeRole(mock.Anything, int64(3), model.RoleBoss).
			Return(&model.User{ID: 3, Email: "user@example.com", Role: model.RoleBoss}, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodPut, "/api/users/3/role?role=BOSS", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var got model.User
		decodeJSON(t, w, &got)
		assert.Equal(t, model.RoleBoss, got.Role)
	})

	t.Run("Failed - invalid role", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().ChangeRole(mock.Anything, int64(3), model.Role("KING")).Return(nil, apperrors.ErrInvalidRole).Once()

		w := perform(r, httptest.NewRequest(http.MethodPut, "/api/users/3/role?role=KING", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - unknown user", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().ChangeRole(mock.Anything, int64(99), model.RoleBoss).Return(nil, apperrors.ErrUserNotFound).Once()

		w := perform(r, httptest.NewRequest(http.MethodPut, "/api/users/99/role?role=BOSS", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		r, users := setupUserTestRouter(t, as(model.RoleSuperAdmin))

		users.EXPECT().Delete(mock.Anything, int64(99)).Return(nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodDelete, "/api/users/99", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Boss is forbidden", func(t *testing.T) {
		r, _ := setupUserTestRouter(t, as(model.RoleBoss))

		w := perform(r, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
