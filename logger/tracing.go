package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.rtnl.ai/etag/internal/ginctx"
)

// Tracing returns a logger carrying the request id of the gin or request context so
// that log messages from handlers can be correlated with the request log.
func Tracing(c any) zerolog.Logger {
	// Without a request ID the global logger is returned unmodified
	if requestID, ok := RequestID(c); ok {
		return log.With().Str("request_id", requestID).Logger()
	}
	return log.With().Logger()
}

// SetRequestID stores the request ID on both the gin and the request context so that it
// is available to handlers that only receive a context.Context.
func SetRequestID(c *gin.Context, requestID string) {
	ginctx.SetBoth(c, ginctx.KeyRequestID, requestID)
}

// RequestID retrieves the request ID from a gin or request context.
func RequestID(c any) (string, bool) {
	if val, exists := ginctx.Get(c, ginctx.KeyRequestID); exists {
		requestID, ok := val.(string)
		return requestID, ok
	}
	return "", false
}
