package model

import (
	"time"
)

// Subscription 每个用户恰好一行，建号时写入默认套餐。user_id 唯一索引保证并发首次请求不会写出两行。
type Subscription struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"uniqueIndex;not null" json:"user_id"`
	Provider  string    `gorm:"size:20;not null;default:internal" json:"provider"`
	Plan      string    `gorm:"size:20;not null;default:free" json:"plan"`
	Status    string    `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
