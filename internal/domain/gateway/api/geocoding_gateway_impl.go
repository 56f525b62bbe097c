package api

import (
	"fmt"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/pkg/http"
)

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &geocodingGatewayImpl{
		httpClient: httpClient,
	}
}

// Resolve resolves a city/country pair to geographic coordinates
func (g *geocodingGatewayImpl) Resolve(city string, country string) (*model.Coordinates, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/search").
		WithQueryParams(map[string]string{
			"name":    city,
			"country": country,
			"count":   "1",
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.ProviderErrorResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			if errorResponse := errResp.(*external.ProviderErrorResponse); errorResponse.Reason != "" {
				return nil, fmt.Errorf("geolocation request failed: %s", errorResponse.Reason)
			}
		}
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}

	response := successResp.(*external.GeocodingResponse)
	if len(response.Results) == 0 {
		return nil, ErrLocationNotFound
	}

	best := response.Results[0]
	return &model.Coordinates{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}, nil
}
