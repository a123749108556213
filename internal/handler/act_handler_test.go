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
)

type actMocks struct {
	humanActs    *mocks.MockHumanActService
	animalActs   *mocks.MockAnimalActService
	performances *mocks.MockPerformanceService
	employees    *mocks.MockEmployeeService
	animals      *mocks.MockAnimalService
}

func setupActTestRouter(t *testing.T, principal *security.Principal) (*gin.Engine, actMocks) {
	m := actMocks{
		humanActs:    mocks.NewMockHumanActService(t),
		animalActs:   mocks.NewMockAnimalActService(t),
		performances: mocks.NewMockPerformanceService(t),
		employees:    mocks.NewMockEmployeeService(t),
		animals:      mocks.NewMockAnimalService(t),
	}
	h := handler.NewActHandler(m.humanActs, m.animalActs, m.performances, m.employees, m.animals)
	return setupTestRouter(principal, h), m
}

func TestHumanActPages(t *testing.T) {
	employees := []*model.Employee{{ID: 4, Name: "Acrobat Amy"}, {ID: 5, Name: "Clown Bob"}}

	t.Run("Filter by main performer", func(t *testing.T) {
		r, m := setupActTestRouter(t, as(model.RoleEmployee))

		m.humanActs.EXPECT().ListByPerformer(mock.Anything, int64(4)).Return([]*model.HumanAct{
			{ID: 1, Title: "Trapeze", MainPerformerID: 4},
		}, nil).Once()
		m.employees.EXPECT().List(mock.Anything).Return(employees, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/humanActs?performerId=4", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Trapeze")
		assert.Contains(t, w.Body.String(), `<option value="4" selected>`)
		m.humanActs.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Without a filter lists every act", func(t *testing.T) {
		r, m := setupActTestRouter(t, as(model.RoleBoss))

		m.humanActs.EXPECT().List(mock.Anything).Return([]*model.HumanAct{
			{ID: 1, Title: "Trapeze", MainPerformerID: 4},
			{ID: 2, Title: "Pie fight", MainPerformerID: 5},
		}, nil).Once()
		m.employees.EXPECT().List(mock.Anything).Return(employees, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/humanActs", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Pie fight")
		m.humanActs.AssertNotCalled(t, "ListByPerformer", mock.Anything, mock.Anything)
	})

	t.Run("Malformed filter lists every act", func(t *testing.T) {
		r, m := setupActTestRouter(t, as(model.RoleEmployee))

		m.humanActs.EXPECT().List(mock.Anything).Return([]*model.HumanAct{}, nil).Once()
		m.employees.EXPECT().List(mock.Anything).Return(employees, nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/humanActs?performerId=abc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No human acts.")
	})

	t.Run("Visitor is denied", func(t *testing.T) {
		r, _ := setupActTestRouter(t, as(model.RoleVisitor))

		w := perform(r, httptest.NewRequest(http.MethodGet, "/humanActs?performerId=4", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/access-denied", w.Header().Get("Location"))
	})

	t.Run("Unknown performer re-renders the form", func(t *testing.T) {
		principal := as(model.RoleEmployee)
		r, m := setupActTestRouter(t, principal)

		m.humanActs.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidInput).Once()
		m.performances.EXPECT().List(mock.Anything, principal, model.PerformanceListQuery{}).
			Return([]*model.Performance{{ID: 1, Name: "Gala"}}, nil).Once()
		m.employees.EXPECT().List(mock.Anything).Return(employees, nil).Once()

		w := perform(r, createFormHTTPRequest("/humanActs/save", url.Values{
			"title": {"Trapeze"}, "performance_id": {"1"}, "main_performer_id": {"999"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.ErrInvalidInput.Error())
	})

	t.Run("Delete of an unknown id redirects to the list", func(t *testing.T) {
		r, m := setupActTestRouter(t, as(model.RoleEmployee))

		m.humanActs.EXPECT().Delete(mock.Anything, int64(404)).Return(nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/humanActs/delete/404", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/humanActs", w.Header().Get("Location"))
	})
}

func TestAnimalActPages(t *testing.T) {
	t.Run("Missing trainer re-renders the form", func(t *testing.T) {
		principal := as(model.RoleEmployee)
		r, m := setupActTestRouter(t, principal)

		m.performances.EXPECT().List(mock.Anything, principal, model.PerformanceListQuery{}).
			Return([]*model.Performance{{ID: 1, Name: "Gala"}}, nil).Once()
		m.animals.EXPECT().List(mock.Anything).Return([]*model.Animal{{ID: 2, Name: "Leo"}}, nil).Once()
		m.employees.EXPECT().List(mock.Anything).Return([]*model.Employee{{ID: 3, Name: "Trainer Tom"}}, nil).Once()

		w := perform(r, createFormHTTPRequest("/animalActs/save", url.Values{
			"performance_id": {"1"}, "animal_id": {"2"},
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "trainerid is required")
		m.animalActs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Save redirects to the list", func(t *testing.T) {
		r, m := setupActTestRouter(t, as(model.RoleEmployee))

		m.animalActs.EXPECT().Save(mock.Anything, &model.AnimalAct{PerformanceID: 1, AnimalID: 2, TrainerID: 3}).
			Return(&model.AnimalAct{ID: 9}, nil).Once()

		w := perform(r, createFormHTTPRequest("/animalActs/save", url.Values{
			"performance_id": {"1"}, "animal_id": {"2"}, "trainer_id": {"3"},
		}))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/animalActs", w.Header().Get("Location"))
	})

	t.Run("Delete of an unknown id redirects to the list", func(t *testing.T) {
		r, m := setupActTestRouter(t, as(model.RoleEmployee))

		m.animalActs.EXPECT().Delete(mock.Anything, int64(404)).Return(nil).Once()

		w := perform(r, httptest.NewRequest(http.MethodGet, "/animalActs/delete/404", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/animalActs", w.Header().Get("Location"))
	})
}
