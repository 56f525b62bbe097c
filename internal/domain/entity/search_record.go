package entity

import "time"

// SearchRecord is the persisted summary of a successful forecast search,
// derived from the first forecast day. Records are append-only.
type SearchRecord struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	TempMax     float64   `json:"tempMax"`
	TempMin     float64   `json:"tempMin"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdDate"`
}
