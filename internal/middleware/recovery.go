package middleware

import (
	"fmt"

	"circus-admin/internal/security"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in any later handler into an UnhandledFault response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}
		Fail(c, security.UnhandledFault, err)
	})
}
