package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"circus-admin/internal/model"
	"circus-admin/internal/router"
	"circus-admin/internal/security"
	"circus-admin/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

type stubResolver struct {
	principal *security.Principal
}

func (s stubResolver) Resolve(*gin.Context) (*security.Principal, error) {
	return s.principal, nil
}

func as(role model.Role) *security.Principal {
	return &security.Principal{UserID: 1, Email: strings.ToLower(string(role)) + "@example.com", Role: role}
}

// setupTestRouter 使用正式的 middleware 與模板，只替換登入者
func setupTestRouter(principal *security.Principal, handlers ...router.RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.New(router.Options{
		Policy:    security.DefaultPolicy(),
		Resolver:  stubResolver{principal: principal},
		Templates: view.MustTemplates(),
	}, handlers...)
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// create HTTP request with a urlencoded form body
func createFormHTTPRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
