package middleware

import (
	"circus-admin/internal/security"
	"circus-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fail answers the request according to the failure kind and aborts the chain.
// The response shape depends only on the request path.
func Fail(c *gin.Context, kind security.Failure, err error) {
	path := c.Request.URL.Path
	resp := security.RespondFailure(path, kind, err)

	log := logger.WithComponent("access").With(
		zap.String("path", path),
		zap.String("failure", kind.String()),
		zap.Int("status", resp.Status),
	)
	if kind == security.UnhandledFault {
		log.Error("Request failed", zap.Error(err))
	} else if err != nil {
		log.Warn("Request rejected", zap.Error(err))
	} else {
		log.Warn("Request rejected")
	}
	writeFailure(c, resp)
}

// Respond writes the failure response without logging.
func Respond(c *gin.Context, kind security.Failure, err error) {
	writeFailure(c, security.RespondFailure(c.Request.URL.Path, kind, err))
}

func writeFailure(c *gin.Context, resp security.FailureResponse) {
	switch {
	case resp.IsRedirect():
		c.Redirect(resp.Status, resp.Redirect)
		c.Abort()
	case resp.Template != "":
		model := gin.H{"principal": CurrentPrincipal(c)}
		for k, v := range resp.Model {
			model[k] = v
		}
		c.HTML(resp.Status, resp.Template, model)
		c.Abort()
	default:
		c.AbortWithStatusJSON(resp.Status, resp.Body)
	}
}

// NoRoute 找不到路由時回應 NotFound
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		Fail(c, security.NotFound, nil)
	}
}
