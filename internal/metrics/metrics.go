package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// http_requests_total and http_request_duration_seconds are labelled by the
// route pattern, not the raw path, so ids do not explode cardinality.
var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	ResourceEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "resource_events_total", Help: "Resource lifecycle events consumed, by resource and action."},
		[]string{"resource", "action"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, ResourceEvents)
}

// Handler records request count and latency. Label values outlive the
// request, so fiber's zero-copy strings are copied first.
func Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		path = utils.CopyString(path)
		method := utils.CopyString(c.Method())

		HTTPLatency.WithLabelValues(path, method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, method, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}

func Exposer() fiber.Handler { return adaptor.HTTPHandler(promhttp.Handler()) }
