package api

import (
	"errors"

	"weather-api/internal/domain/model"
)

// ErrLocationNotFound is returned when the geocoding provider has no match
// for the requested city and country.
var ErrLocationNotFound = errors.New("location not found")

// GeocodingGateway defines the interface for resolving place names to coordinates
type GeocodingGateway interface {
	// Resolve resolves a city/country pair to geographic coordinates using the
	// best match returned by the provider.
	// Returns ErrLocationNotFound when the provider has zero results; any other
	// error is a transport failure carrying the upstream message.
	Resolve(city string, country string) (*model.Coordinates, error)
}
