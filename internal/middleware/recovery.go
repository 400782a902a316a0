package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery converts a handler panic into a 500 carrying the request id, so the
// client can quote it and the stack can be found in the logs.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			var actorID int64
			if actor := ActorFrom(c); actor != nil {
				actorID = actor.UserID
			}
			requestID := c.GetString(requestIDKey)

			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", requestID),
				logger.Int64("actor_id", actorID),
				logger.String("route", c.FullPath()),
				logger.String("panic", fmt.Sprint(rec)),
				logger.String("stack", string(debug.Stack())),
			)

			c.Set("error", fmt.Sprintf("panic: %v", rec))
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{
				"error":      "internal server error",
				"request_id": requestID,
			})
		}()

		c.Next()
	}
}
