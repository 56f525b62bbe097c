package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/search"
	"weather-api/pkg/util/numberutils"
)

type WeatherController struct {
	api          *echo.Group
	useCase      search.UseCase
	historyLimit int
}

func NewWeatherController(api *echo.Group, useCase search.UseCase, historyLimit int) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, historyLimit: historyLimit}
}

// InitWeatherRoutes initializes forecast search routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/search", controller.Search)
	controller.api.GET("/history", controller.History)
}

// Search godoc
// @Summary Search the forecast for a location
// @Description Resolve a city/country pair to coordinates and return the normalized multi-day forecast
// @Tags weather
// @Accept json
// @Produce json
// @Param city query string true "City name"
// @Param country query string true "Country name"
// @Success 200 {object} model.SearchResult "Normalized daily forecast"
// @Failure 400 {object} map[string]string "Missing input or location not found"
// @Failure 404 {object} map[string]string "No forecast data available"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /search [get]
func (controller *WeatherController) Search(c echo.Context) error {
	city := c.QueryParam("city")
	country := c.QueryParam("country")

	result, err := controller.useCase.Search(city, country)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

// History godoc
// @Summary Get recent searches
// @Description Retrieve the most recent search summaries, newest first
// @Tags weather
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of entries" default(10)
// @Success 200 {array} model.HistoryEntry "Recent search summaries"
// @Failure 500 {object} map[string]string "History store unavailable"
// @Router /history [get]
func (controller *WeatherController) History(c echo.Context) error {
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), controller.historyLimit)
	limit = numberutils.ClampInt(limit, 1, controller.historyLimit)

	entries, err := controller.useCase.Recent(limit)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}

// statusFor is the single place the error taxonomy maps to HTTP status codes.
func statusFor(err error) int {
	switch model.KindOf(err) {
	case model.KindBadInput:
		return http.StatusBadRequest
	case model.KindNoData:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
