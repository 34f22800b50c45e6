package model

import (
	"time"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"

	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
)

// TripMember 行程成员关系，(trip_id, user_id) 复合主键。
// 不变式：行程自创建起始终存在一条 role=owner 且 status=active 的成员行，与行程同事务写入。
type TripMember struct {
	TripID    int64     `gorm:"primaryKey;autoIncrement:false" json:"trip_id"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Role      string    `gorm:"size:20;not null;default:member" json:"role"`
	Status    string    `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (TripMember) TableName() string {
	return "trip_members"
}
