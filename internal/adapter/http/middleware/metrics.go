package middleware

import (
	"github.com/gin-gonic/gin"
)

// RequestTracker is satisfied by metrics.Recorder.
type RequestTracker interface {
	RequestStarted() func(method, route string, status int)
}

// Metrics records one observation per request. The matched route template is
// used as label so path parameters do not explode cardinality.
func Metrics(tracker RequestTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := tracker.RequestStarted()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request.Method, route, c.Writer.Status())
	}
}
