package api

import (
	"errors"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
)

// ErrMissingDailyData is returned when the forecast provider responds without
// the expected daily-data container.
var ErrMissingDailyData = errors.New("forecast response has no daily data")

// ForecastGateway defines the interface for fetching raw daily forecasts
type ForecastGateway interface {
	// FetchDaily requests the daily forecast variables for the given
	// coordinates with provider-side timezone resolution.
	// Returns ErrMissingDailyData when the daily container is absent; any other
	// error is a transport failure carrying the upstream message.
	FetchDaily(coords model.Coordinates) (*external.DailyBlock, error)
}
