package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetActive 查找 (trip, user) 的活跃成员行。每次鉴权都是一次新鲜读，跨请求不缓存。
func (r *MemberRepository) GetActive(tripID, userID int64) (*model.TripMember, error) {
	var member model.TripMember
	err := r.db.Where("trip_id = ? AND user_id = ? AND status = ?", tripID, userID, model.MemberStatusActive).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// AddIfAbsent 插入成员行，复合主键冲突视为成功的空操作
func (r *MemberRepository) AddIfAbsent(member *model.TripMember) (bool, error) {
	err := r.db.Create(member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *MemberRepository) UpdateStatus(tripID, userID int64, status string) error {
	return r.db.Model(&model.TripMember{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Update("status", status).Error
}
