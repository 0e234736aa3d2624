package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives one event per successful API call.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful authenticated API calls. The event name
// is derived from the route template, e.g. "/api/v1/orders/:orderID" becomes
// "api_v1_orders_:orderID".
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if requestID := GetRequestIDFromCtx(c.Request.Context()); requestID != "" {
			props["request_id"] = requestID
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		sink.Enqueue(userID, eventName, props)
	}
}
