package model

import (
	"time"
)

// Trip 行程，顶层共享容器。创建后 owner 不变。
type Trip struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	OwnerID      int64      `gorm:"not null;index" json:"owner_id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	StartDate    *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Timezone     string     `gorm:"size:64;not null" json:"timezone"`
	CoverMediaID *int64     `gorm:"index" json:"cover_media_id,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Trip) TableName() string {
	return "trips"
}
