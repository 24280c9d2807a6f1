package logger

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.rtnl.ai/etag"
	"go.rtnl.ai/etag/o11y"
	"go.rtnl.ai/ulid"
)

// Logger returns a new Gin middleware that logs every request with zerolog, including
// the entity tag placed on the response (if any) so that cache behavior can be traced
// from the request logs alone.
func Logger(service, version string, withMetrics bool) gin.HandlerFunc {
	if withMetrics {
		if err := o11y.Setup(); err != nil {
			log.Error().Err(err).Msg("failed to setup o11y metrics")
			withMetrics = false
		}
	}

	return func(c *gin.Context) {
		// Before request
		started := time.Now()

		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		// Create a request ID for tracing purposes and add to context
		requestID := ulid.Make().String()
		SetRequestID(c, requestID)

		// Handle the request
		c.Next()

		// After request
		status := c.Writer.Status()
		logctx := log.With().
			Str("path", path).
			Str("service", service).
			Str("version", version).
			Str("method", c.Request.Method).
			Dur("resp_time", time.Since(started)).
			Int("resp_bytes", c.Writer.Size()).
			Int("status", status).
			Str("client_ip", c.ClientIP()).
			Str("request_id", requestID).
			Logger()

		// Trace the entity tag the handlers placed on the response
		if tag := etag.Tag(c.Writer.Header().Get("ETag")); tag != "" {
			logctx = logctx.With().Str("etag", tag.String()).Bool("etag_weak", tag.IsWeak()).Logger()
		}

		// Log any errors that were added to the context
		if len(c.Errors) > 0 {
			errs := make([]error, 0, len(c.Errors))
			for _, err := range c.Errors {
				errs = append(errs, err)
			}
			logctx = logctx.With().Errs("errors", errs).Logger()
		}

		// Create the message to send to the logger.
		var msg string
		switch len(c.Errors) {
		case 0, 1:
			msg = fmt.Sprintf("%s %s %s %d", service, c.Request.Method, c.Request.URL.Path, status)
		default:
			msg = fmt.Sprintf("%s %s %s [%d] %d errors occurred", service, c.Request.Method, c.Request.URL.Path, status, len(c.Errors))
		}

		switch {
		case status >= 400 && status < 500:
			logctx.Warn().Msg(msg)
		case status >= 500:
			logctx.Error().Msg(msg)
		default:
			logctx.Info().Msg(msg)
		}

		if withMetrics {
			statusText := http.StatusText(status)
			o11y.RequestsHandled.WithLabelValues(service, c.Request.Method, statusText, c.FullPath()).Inc()
			o11y.RequestDuration.WithLabelValues(service, c.Request.Method, statusText, c.FullPath()).Observe(time.Since(started).Seconds())
			o11y.RequestSize.WithLabelValues(service, c.Request.Method, statusText, c.FullPath()).Observe(float64(c.Request.ContentLength))
			o11y.ResponseSize.WithLabelValues(service, c.Request.Method, statusText, c.FullPath()).Observe(float64(c.Writer.Size()))
		}
	}
}
