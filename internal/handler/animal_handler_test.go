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

func setupAnimalTestRouter(t *testing.T, principal *security.Principal) (*gin.Engine, *mocks.MockAnimalService) {
	animals := mocks.NewMockAnimalService(t)
	return setupTestRouter(principal, handler.NewAnimalHandler(animals)), animals
}

func TestAnimalPages(t *testing.T) {
	t.Run("Employee sees the list", func(t *testing.T) {
		r, animals := setupAnimalTestRouter(t, as(model.RoleEmployee))

		animals.EXPECT().List(mock.Anything).Return([]*model.Animal{
			{ID: 1, Name: "Dumbo", Species: "elephant", Age: 4},
		}, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/animals", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Dumbo")
	})

	t.Run("Visitor is denied", func(t *testing.T) {
		r, _ := setupAnimalTestRouter(t, as(model.RoleVisitor))

		w := perform(r, httptest.NewRequest(http.MethodGet, "/animals", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/access-denied", w.Header().Get("Location"))
	})

	t.Run("Negative age re-renders the form", func(t *testing.T) {
		r, animals := setupAnimalTestRouter(t, as(model.RoleEmployee))

		w := perform(r, createFormHTTPRequest("/animals/save", url.Values{"name": {"Dumbo"}, "age": {"-1"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "age must be at least 0")
		animals.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Save redirects to the list", func(t *testing.T) {
		r, animals := setupAnimalTestRouter(t, as(model.RoleEmployee))

		animals.EXPECT().Save(mock.Anything, &model.Animal{Name: "Dumbo", Species: "elephant", Age: 4}).
			Return(&model.Animal{ID: 1}, nil).Once()

		w := perform(r, createFormHTTPRequest("/animals/save", url.Values{
			"name": {"Dumbo"}, "species": {"elephant"}, "age": {"4"},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/animals", w.Header().Get("Location"))
	})

	t.Run("Delete of an animal in an act shows the reason", func(t *testing.T) {
		r, animals := setupAnimalTestRouter(t, as(model.RoleEmployee))

		err := fmt.Errorf("%w: animal 1 is still used by an animal act", apperrors.ErrInvalidInput)
		animals.EXPECT().Delete(mock.Anything, int64(1)).Return(err).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/animals/delete/1", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/animals?error="+url.QueryEscape(err.Error()), w.Header().Get("Location"))
	})

	t.Run("Delete of an unknown id redirects to the list", func(t *testing.T) {
		r, animals := setupAnimalTestRouter(t, as(model.RoleEmployee))

		animals.EXPECT().Delete(mock.Anything, int64(404)).Return(nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/animals/delete/404", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/animals", w.Header().Get("Location"))
	})
}
