package external

// GeocodingResponse represents the response from the Open-Meteo geocoding API.
// Results is absent entirely when nothing matches the query.
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult represents a single geocoding match.
type GeocodingResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API.
type ForecastResponse struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Daily     *DailyBlock `json:"daily"`
}

// DailyBlock holds the provider's per-day forecast data as parallel arrays;
// index i across all arrays describes the same calendar day.
type DailyBlock struct {
	Time           []string  `json:"time"`
	TemperatureMin []float64 `json:"temperature_2m_min"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	WeatherCode    []int     `json:"weathercode"`
	HumidityMin    []float64 `json:"relative_humidity_2m_min"`
	HumidityMax    []float64 `json:"relative_humidity_2m_max"`
}

// ProviderErrorResponse represents error responses from the Open-Meteo APIs.
type ProviderErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
