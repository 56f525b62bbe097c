package api

import (
	"fmt"
	"strconv"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
)

// dailyVariables is the fixed set of daily forecast variables requested from
// the provider.
const dailyVariables = "temperature_2m_min,temperature_2m_max,weathercode,relative_humidity_2m_min,relative_humidity_2m_max"

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &forecastGatewayImpl{
		httpClient: httpClient,
	}
}

// FetchDaily requests the daily forecast variables for the given coordinates
func (f *forecastGatewayImpl) FetchDaily(coords model.Coordinates) (*external.DailyBlock, error) {
	successResp, errResp, _, err := f.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
			"daily":     dailyVariables,
			"timezone":  "auto",
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.ProviderErrorResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			if errorResponse := errResp.(*external.ProviderErrorResponse); errorResponse.Reason != "" {
				return nil, fmt.Errorf("forecast request failed: %s", errorResponse.Reason)
			}
		}
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	response := successResp.(*external.ForecastResponse)
	if response.Daily == nil {
		return nil, ErrMissingDailyData
	}

	return response.Daily, nil
}
