package search

import (
	"weather-api/internal/domain/model"
)

type UseCase interface {
	// Search resolves a city/country pair to coordinates, fetches the daily
	// forecast and returns it normalized. A successful search with a non-empty
	// forecast is recorded to history as a best-effort side effect.
	Search(city string, country string) (*model.SearchResult, error)

	// Recent returns at most limit past search summaries, newest first.
	Recent(limit int) ([]model.HistoryEntry, error)
}
