package router

import (
	"html/template"
	"net/http"

	"circus-admin/internal/middleware"
	"circus-admin/internal/security"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by every handler.
type RouteRegistrar interface {
	RegisterRoutes(r *gin.Engine)
}

type Options struct {
	Policy    *security.Policy
	Resolver  middleware.IdentityResolver
	Templates *template.Template
	Static    http.FileSystem
}

// New 建立 gin engine：記錄、panic 復原、身分解析、存取控制，之後才進入 handler
func New(opts Options, handlers ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.Authenticate(opts.Resolver),
		middleware.Authorize(opts.Policy),
	)

	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}
	if opts.Static != nil {
		r.StaticFS("/static", opts.Static)
	}
	r.NoRoute(middleware.NoRoute())

	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return r
}
