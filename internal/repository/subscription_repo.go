package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// CreateIfAbsent 插入默认订阅行；user_id 唯一键冲突视为成功的空操作。
// 幂等契约是显式的：并发的首次请求不会写出两行，也不会让请求失败。
// 返回值表示本次是否真正插入了新行。
func (r *SubscriptionRepository) CreateIfAbsent(sub *model.Subscription) (bool, error) {
	err := r.db.Create(sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SubscriptionRepository) GetByUserID(userID int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) CountByUserID(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
