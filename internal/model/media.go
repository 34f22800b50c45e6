package model

import (
	"time"
)

// Media 媒体行，归属行程内的某个时刻。
type Media struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	TripID     int64     `gorm:"not null;index" json:"trip_id"`
	MomentID   int64     `gorm:"not null;index" json:"moment_id"`
	Type       string    `gorm:"size:20;not null" json:"type"`
	StorageKey string    `gorm:"size:500;not null" json:"storage_key"`
	CDNUrl     string    `gorm:"size:500" json:"cdn_url"`
	ThumbURL   *string   `gorm:"size:500" json:"thumb_url,omitempty"`
	SizeBytes  int64     `gorm:"default:0" json:"size_bytes"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Media) TableName() string {
	return "media"
}
