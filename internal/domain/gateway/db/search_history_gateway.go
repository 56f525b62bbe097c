package db

import (
	"weather-api/internal/domain/entity"
)

// SearchHistoryGateway is the persistence boundary for search summaries. The
// core depends only on append-one and find-with-sort-limit-projection, not on
// a particular store.
type SearchHistoryGateway interface {
	// Insert appends a search record. Records are never updated afterwards.
	Insert(record entity.SearchRecord) error

	// FindRecent returns at most limit records ordered by creation time
	// descending.
	FindRecent(limit int) ([]entity.SearchRecord, error)
}
