package middleware_test

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"circus-admin/internal/middleware"
	"circus-admin/internal/model"
	"circus-admin/internal/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	principal *security.Principal
	err       error
}

func (s stubResolver) Resolve(*gin.Context) (*security.Principal, error) {
	return s.principal, s.err
}

func setupAccessRouter(resolver middleware.IdentityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Authenticate(resolver), middleware.Authorize(security.DefaultPolicy()))
	r.SetHTMLTemplate(template.Must(template.New("error").Parse(`{{.message}}`)))
	r.NoRoute(middleware.NoRoute())

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/employees", ok)
	r.GET("/api/employees", ok)
	r.GET("/users", ok)
	r.GET("/performances", ok)
	r.GET("/login", ok)
	r.GET("/panic", func(*gin.Context) { panic(errors.New("kaboom")) })
	r.GET("/api/panic", func(*gin.Context) { panic("kaboom") })
	return r
}

func as(role model.Role) stubResolver {
	return stubResolver{principal: &security.Principal{UserID: 1, Email: "x@example.com", Role: role}}
}

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthorize_VisitorRequestsEmployees(t *testing.T) {
	r := setupAccessRouter(as(model.RoleVisitor))

	t.Run("Interactive", func(t *testing.T) {
		w := serve(r, "/employees")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/access-denied", w.Header().Get("Location"))
	})

	t.Run("Programmatic", func(t *testing.T) {
		w := serve(r, "/api/employees")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Forbidden", errorBody(t, w))
	})
}

func TestAuthorize_SuperAdminRequestsEmployees(t *testing.T) {
	r := setupAccessRouter(as(model.RoleSuperAdmin))

	assert.Equal(t, http.StatusOK, serve(r, "/employees").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/api/employees").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/users").Code)
}

func TestAuthorize_Anonymous(t *testing.T) {
	r := setupAccessRouter(stubResolver{})

	t.Run("Interactive is sent to login", func(t *testing.T) {
		w := serve(r, "/performances")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("Programmatic gets 401", func(t *testing.T) {
		w := serve(r, "/api/employees")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", errorBody(t, w))
	})

	t.Run("Public page", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(r, "/login").Code)
	})

	t.Run("Unknown page still requires login", func(t *testing.T) {
		w := serve(r, "/nowhere")
		assert.Equal(t, http.StatusFound, w.Code)
	})
}

func TestAuthorize_UsersNeverTwoHundredBelowSuperAdmin(t *testing.T) {
	for _, resolver := range []stubResolver{{}, as(model.RoleVisitor), as(model.RoleEmployee), as(model.RoleBoss)} {
		w := serve(setupAccessRouter(resolver), "/users")
		assert.Equal(t, http.StatusFound, w.Code)
	}
}

func TestNoRoute(t *testing.T) {
	r := setupAccessRouter(as(model.RoleEmployee))

	t.Run("Interactive", func(t *testing.T) {
		w := serve(r, "/nowhere")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "page not found: /nowhere")
	})

	t.Run("Programmatic", func(t *testing.T) {
		w := serve(r, "/api/nowhere")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not Found", errorBody(t, w))
	})
}

func TestRecovery(t *testing.T) {
	r := setupAccessRouter(as(model.RoleEmployee))

	t.Run("Interactive", func(t *testing.T) {
		w := serve(r, "/panic")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "kaboom")
	})

	t.Run("Programmatic", func(t *testing.T) {
		w := serve(r, "/api/panic")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "kaboom", errorBody(t, w))
	})
}

func TestAuthenticate_ResolverFailure(t *testing.T) {
	r := setupAccessRouter(stubResolver{err: errors.New("redis down")})

	w := serve(r, "/api/employees")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "redis down", errorBody(t, w))
}

func TestFailAndRespondWriteTheSameResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl := template.Must(template.New("error").Parse(`{{.message}}`))
	kinds := []security.Failure{security.Unauthenticated, security.Forbidden, security.NotFound, security.UnhandledFault}

	for _, path := range []string{"/animals/1", "/api/animals/1"} {
		for _, kind := range kinds {
			write := func(f func(*gin.Context, security.Failure, error)) *httptest.ResponseRecorder {
				w := httptest.NewRecorder()
				c, r := gin.CreateTestContext(w)
				r.SetHTMLTemplate(tmpl)
				c.Request = httptest.NewRequest(http.MethodGet, path, nil)
				f(c, kind, errors.New("boom"))
				assert.True(t, c.IsAborted())
				return w
			}

			failed, responded := write(middleware.Fail), write(middleware.Respond)
			assert.Equal(t, responded.Code, failed.Code, "%s %s", path, kind)
			assert.Equal(t, responded.Header().Get("Location"), failed.Header().Get("Location"), "%s %s", path, kind)
			assert.Equal(t, responded.Body.String(), failed.Body.String(), "%s %s", path, kind)
		}
	}
}
