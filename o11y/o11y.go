package o11y

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	setup    sync.Once
	setupErr error
)

// Metrics returns a middleware that records request metrics for the service.
func Metrics(service string) (_ gin.HandlerFunc, err error) {
	if err = Setup(); err != nil {
		return nil, err
	}

	return func(c *gin.Context) {
		// Before request
		start := time.Now()

		// Handle the request
		c.Next()

		// After request
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method
		path := c.FullPath()
		duration := time.Since(start)

		RequestsHandled.WithLabelValues(service, method, status, path).Inc()
		RequestDuration.WithLabelValues(service, method, status, path).Observe(duration.Seconds())
		RequestSize.WithLabelValues(service, method, status, path).Observe(float64(c.Request.ContentLength))
		ResponseSize.WithLabelValues(service, method, status, path).Observe(float64(c.Writer.Size()))
	}, nil
}

// Routes adds the prometheus scrape endpoint to the router.
func Routes(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Setup registers the prometheus collectors exactly once; subsequent calls return the
// error (if any) from the first registration.
func Setup() error {
	setup.Do(func() {
		// Register the collectors
		setupErr = initCollectors()
	})
	return setupErr
}

func initCollectors() (err error) {
	// Track all collectors to register at the end of the function.
	// When adding new collectors make sure to increase the capacity.
	collectors := make([]prometheus.Collector, 0, 7)

	var httpCollectors []prometheus.Collector
	if httpCollectors, err = initHTTPCollectors(); err != nil {
		return err
	}
	collectors = append(collectors, httpCollectors...)

	var tagCollectors []prometheus.Collector
	if tagCollectors, err = initTagCollectors(); err != nil {
		return err
	}
	collectors = append(collectors, tagCollectors...)

	// Register the collectors
	registerCollectors(collectors)
	return nil
}

func registerCollectors(collectors []prometheus.Collector) {
	var err error
	// Register the collectors
	for _, collector := range collectors {
		if err = prometheus.Register(collector); err != nil {
			err = fmt.Errorf("cannot register collector of type %T: %w", collector, err)
			log.Warn().Err(err).Msg("collector already registered")
		}
	}
}
