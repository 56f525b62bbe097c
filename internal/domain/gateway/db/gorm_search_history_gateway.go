package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weather-api/internal/domain/entity"
)

type GormSearchHistoryGateway struct {
	DB *gorm.DB
}

var _ SearchHistoryGateway = (*GormSearchHistoryGateway)(nil)

func NewGormSearchHistoryGateway(db *gorm.DB) *GormSearchHistoryGateway {
	return &GormSearchHistoryGateway{DB: db}
}

// Insert appends a search record, assigning the identifier and timestamp when
// the caller left them unset.
func (gateway *GormSearchHistoryGateway) Insert(record entity.SearchRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	return gateway.DB.Create(&record).Error
}

// FindRecent returns at most limit records, newest first. Only the summary
// columns are selected; the identifier stays internal to the store layer.
func (gateway *GormSearchHistoryGateway) FindRecent(limit int) ([]entity.SearchRecord, error) {
	var records []entity.SearchRecord

	err := gateway.DB.
		Select("city", "country", "temp_max", "temp_min", "description", "icon", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
