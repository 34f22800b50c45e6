package model

import (
	"time"
)

// Attachment 附件行，归属行程，可选归属某个时刻（行程级附件 moment_id 为 NULL）。
// url 用于不经对象存储的外部链接，此时 storage_key 为 NULL。
type Attachment struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	TripID     int64     `gorm:"not null;index" json:"trip_id"`
	MomentID   *int64    `gorm:"index" json:"moment_id,omitempty"`
	UploadedBy int64     `gorm:"not null" json:"uploaded_by"`
	Type       string    `gorm:"size:20;not null" json:"type"`
	Title      *string   `gorm:"size:255" json:"title,omitempty"`
	StorageKey *string   `gorm:"size:500" json:"storage_key,omitempty"`
	CDNUrl     *string   `gorm:"size:500" json:"cdn_url,omitempty"`
	URL        *string   `gorm:"size:500" json:"url,omitempty"`
	SizeBytes  int64     `gorm:"default:0" json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
