package model

import (
	"time"
)

// Moment 行程内的一条时刻记录。story/location/moment_time 均可空，
// 可空列用指针表示：只有真正缺席才落 NULL，空字符串原样保留。
type Moment struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	TripID       int64      `gorm:"not null;index" json:"trip_id"`
	CreatedBy    int64      `gorm:"not null" json:"created_by"`
	Story        *string    `gorm:"type:text" json:"story,omitempty"`
	LocationName *string    `gorm:"size:255" json:"location_name,omitempty"`
	MomentTime   *time.Time `gorm:"index" json:"moment_time,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Moment) TableName() string {
	return "moments"
}

// EffectiveTime 排序与按天分桶使用的时间：moment_time 缺席时用创建时间代替。
func (m *Moment) EffectiveTime() time.Time {
	if m.MomentTime != nil {
		return *m.MomentTime
	}
	return m.CreatedAt
}
