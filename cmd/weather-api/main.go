package main

import (
	"github.com/labstack/echo/v4"

	"weather-api/configs"
	"weather-api/internal/application/controller"
	"weather-api/internal/application/middleware"
	apigateway "weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/usecase/search"
	gormdb "weather-api/internal/infra/database/gorm"
	pkghttp "weather-api/pkg/http"
	"weather-api/pkg/log"
	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	middleware.SetupRequestLogger(e)
	middleware.SetupCORS(e, configs.Env.AllowedOrigin)
	middleware.SetupMetrics(e, "weather_api")
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Gateways
	historyGateway := db.NewGormSearchHistoryGateway(gormdb.Db)
	geocodingGateway := apigateway.NewGeocodingGateway(
		resource.GetString("app.geocoding.base-url"),
		pkghttp.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.geocoding.timeout"),
			ReadTimeout:       resource.GetDuration("app.geocoding.timeout"),
			Logger:            pkghttp.NewZapHTTPLogger(),
		})
	forecastGateway := apigateway.NewForecastGateway(
		resource.GetString("app.forecast.base-url"),
		pkghttp.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.forecast.timeout"),
			ReadTimeout:       resource.GetDuration("app.forecast.timeout"),
			Logger:            pkghttp.NewZapHTTPLogger(),
		})

	// Init UseCase
	searchUseCase := search.NewSearchUseCase(geocodingGateway, forecastGateway, historyGateway)

	// Init Controller
	healthController := controller.NewHealthController(api)
	weatherController := controller.NewWeatherController(api, searchUseCase, resource.GetInt("app.history.limit"))

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
