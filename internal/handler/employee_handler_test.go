package handler_test

import (
	"fmt"
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
)

func setupEmployeeTestRouter(t *testing.T, principal *security.Principal) (*gin.Engine, *mocks.MockEmployeeService) {
	employees := mocks.NewMockEmployeeService(t)
	return setupTestRouter(principal, handler.NewEmployeeHandler(employees)), employees
}

func TestEmployeePages(t *testing.T) {
	t.Run("Super admin sees the list", func(t *testing.T) {
		r, employees := setupEmployeeTestRouter(t, as(model.RoleSuperAdmin))

		employees.EXPECT().List(mock.Anything).Return([]*model.Employee{
			{ID: 1, Name: "Clown Bob", Position: "clown"},
			{ID: 2, Name: "Ringmaster Ann", Position: "ringmaster"},
		}, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Clown Bob")
		assert.Contains(t, w.Body.String(), "Ringmaster Ann")
	})

	t.Run("Visitor is denied", func(t *testing.T) {
		r, _ := setupEmployeeTestRouter(t, as(model.RoleVisitor))

		w := perform(r, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/access-denied", w.Header().Get("Location"))
	})

	t.Run("Employee is denied on the API", func(t *testing.T) {
		r, _ := setupEmployeeTestRouter(t, as(model.RoleEmployee))

		w := perform(r, httptest.NewRequest(http.MethodGet, "/api/employees", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Invalid email re-renders the form", func(t *testing.T) {
		r, employees := setupEmployeeTestRouter(t, as(model.RoleBoss))

		w := perform(r, createFormHTTPRequest("/employees/save", url.Values{"name": {"Clown Bob"}, "email": {"not-an-email"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "email must be a valid email")
		employees.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Delete of an assigned employee shows the reason", func(t *testing.T) {
		r, employees := setupEmployeeTestRouter(t, as(model.RoleBoss))

		err := fmt.Errorf("%w: employee 1 is still assigned to a performance or act", apperrors.ErrInvalidInput)
		employees.EXPECT().Delete(mock.Anything, int64(1)).Return(err).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/employees/delete/1", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/employees?error="+url.QueryEscape(err.Error()), w.Header().Get("Location"))
	})
}
