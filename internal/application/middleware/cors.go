package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupCORS restricts cross-origin requests to the configured origin.
// The default "*" keeps the API open when no origin is configured.
func SetupCORS(e *echo.Echo, allowedOrigin string) {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{allowedOrigin},
	}))
}
