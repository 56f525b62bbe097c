package middleware

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

// SetupMetrics registers the Prometheus request middleware and the /metrics
// exposition endpoint. The middleware records a request counter labelled with
// method, url and status plus a latency histogram per handler.
func SetupMetrics(e *echo.Echo, subsystem string) {
	e.Use(echoprometheus.NewMiddleware(subsystem))
	e.GET("/metrics", echoprometheus.NewHandler())
}
