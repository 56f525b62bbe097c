package model

import "time"

// Coordinates is a resolved geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DailyForecast is a single normalized forecast day.
type DailyForecast struct {
	Date        string  `json:"date"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	HumidityMin int     `json:"humidity_min"`
	HumidityMax int     `json:"humidity_max"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// SearchResult is the response body of a successful forecast search.
type SearchResult struct {
	City     string          `json:"city"`
	Country  string          `json:"country"`
	Forecast []DailyForecast `json:"forecast"`
}

// HistoryEntry is a past search summary as exposed over HTTP. Internal store
// identifiers are stripped.
type HistoryEntry struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	TempMax     float64   `json:"temp_max"`
	TempMin     float64   `json:"temp_min"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Timestamp   time.Time `json:"timestamp"`
}
