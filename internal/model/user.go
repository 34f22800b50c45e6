package model

import (
	"time"
)

// User 邮箱唯一（统一小写后存储，大小写不敏感）。用户由可信请求头首次出现时惰性创建，核心层不删除用户。
type User struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	DisplayName *string   `gorm:"size:100" json:"display_name,omitempty"`
	LastLoginAt time.Time `gorm:"not null" json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
