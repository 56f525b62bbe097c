package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthController struct {
	api *echo.Group
}

func NewHealthController(api *echo.Group) *HealthController {
	return &HealthController{api: api}
}

// InitHealthRoutes initializes liveness routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/", controller.Home)
	controller.api.GET("/health", controller.CheckHealth)
}

// Home godoc
// @Summary API identity marker
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (controller *HealthController) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Weather API is running"})
}

// CheckHealth godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
}
