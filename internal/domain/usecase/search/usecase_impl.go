package search

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"weather-api/internal/domain/entity"
	"weather-api/internal/domain/gateway/api"
	"weather-api/internal/domain/gateway/db"
	"weather-api/internal/domain/model"
	"weather-api/internal/domain/model/external"
	"weather-api/internal/domain/weathercode"
	"weather-api/pkg/log"
)

type searchUseCase struct {
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
	historyGateway   db.SearchHistoryGateway
}

func NewSearchUseCase(geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway, historyGateway db.SearchHistoryGateway) UseCase {
	return &searchUseCase{
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
		historyGateway:   historyGateway,
	}
}

// Search runs the resolve → fetch → normalize pipeline and classifies every
// failure into the closed RequestError taxonomy. Controllers above this layer
// never see raw gateway errors.
func (uc *searchUseCase) Search(city string, country string) (*model.SearchResult, error) {
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)
	if city == "" || country == "" {
		return nil, model.BadInput("Missing city or country input.")
	}

	coords, err := uc.geocodingGateway.Resolve(city, country)
	if err != nil {
		if errors.Is(err, api.ErrLocationNotFound) {
			return nil, model.BadInput("City '%s, %s' not found.", city, country)
		}
		// Provider unreachable counts as caller-facing input failure, not a
		// server fault.
		return nil, model.BadInput("%s", err.Error())
	}

	daily, err := uc.forecastGateway.FetchDaily(*coords)
	if err != nil {
		log.Warnf("Forecast fetch failed for '%s, %s': %v", city, country, err)
		return nil, model.NoData("No forecast data found for '%s, %s'.", city, country)
	}

	forecast, err := buildForecast(daily)
	if err != nil {
		log.Warnf("Forecast response malformed for '%s, %s': %v", city, country, err)
		return nil, model.NoData("No forecast data found for '%s, %s'.", city, country)
	}
	if len(forecast) == 0 {
		return nil, model.NoData("No forecast data found for '%s, %s'.", city, country)
	}

	// Best-effort side effect: the response is already decided, a storage
	// failure is logged and discarded.
	uc.recordSearch(city, country, forecast[0])

	return &model.SearchResult{
		City:     city,
		Country:  country,
		Forecast: forecast,
	}, nil
}

// recordSearch appends the day-zero summary to history. Failures never
// propagate to the caller.
func (uc *searchUseCase) recordSearch(city string, country string, today model.DailyForecast) {
	record := entity.SearchRecord{
		City:        city,
		Country:     country,
		TempMax:     today.TempMax,
		TempMin:     today.TempMin,
		Description: today.Description,
		Icon:        today.Icon,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.historyGateway.Insert(record); err != nil {
		log.Warnf("Failed to record search for '%s, %s': %v", city, country, err)
		return
	}

	log.Infof("Search for '%s, %s' recorded to history", city, country)
}

// Recent returns past search summaries with internal identifiers stripped.
// Unlike the write path, a store failure here surfaces to the caller.
func (uc *searchUseCase) Recent(limit int) ([]model.HistoryEntry, error) {
	records, err := uc.historyGateway.FindRecent(limit)
	if err != nil {
		return nil, model.Internal("Failed to read search history: %v", err)
	}

	entries := make([]model.HistoryEntry, len(records))
	for i, record := range records {
		entries[i] = model.HistoryEntry{
			City:        record.City,
			Country:     record.Country,
			TempMax:     record.TempMax,
			TempMin:     record.TempMin,
			Description: record.Description,
			Icon:        record.Icon,
			Timestamp:   record.CreatedAt,
		}
	}

	return entries, nil
}

// buildForecast transposes the provider's parallel daily arrays into ordered
// per-day records. The arrays are expected to share one length; a mismatch
// fails the whole block rather than producing partial days.
func buildForecast(daily *external.DailyBlock) ([]model.DailyForecast, error) {
	n := len(daily.Time)
	if len(daily.TemperatureMin) != n || len(daily.TemperatureMax) != n ||
		len(daily.WeatherCode) != n || len(daily.HumidityMin) != n || len(daily.HumidityMax) != n {
		return nil, fmt.Errorf("daily arrays are misaligned")
	}

	forecast := make([]model.DailyForecast, 0, n)
	for i := 0; i < n; i++ {
		day, err := time.Parse("2006-01-02", daily.Time[i])
		if err != nil {
			return nil, fmt.Errorf("invalid forecast date '%s': %w", daily.Time[i], err)
		}

		description, icon := weathercode.Lookup(daily.WeatherCode[i])

		forecast = append(forecast, model.DailyForecast{
			Date:        day.Format("Monday, 02 Jan"),
			TempMin:     roundTenth(daily.TemperatureMin[i]),
			TempMax:     roundTenth(daily.TemperatureMax[i]),
			HumidityMin: int(daily.HumidityMin[i]),
			HumidityMax: int(daily.HumidityMax[i]),
			Description: description,
			Icon:        icon,
		})
	}

	return forecast, nil
}

// roundTenth rounds to one decimal place, halves away from zero.
func roundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
