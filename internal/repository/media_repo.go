package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create 单条插入，事务内执行：失败即整体回滚，第二个读者看不到半提交状态
func (r *MediaRepository) Create(media *model.Media) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(media).Error
	})
}

func (r *MediaRepository) GetByID(id int64) (*model.Media, error) {
	var media model.Media
	err := r.db.Where("id = ?", id).First(&media).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// ListByMomentIDs 一次批量取出整组时刻的媒体行（固定一条 IN 查询，与时刻数无关），
// 组内顺序：显式 sort_order，再按创建时间。
func (r *MediaRepository) ListByMomentIDs(momentIDs []int64) ([]*model.Media, error) {
	if len(momentIDs) == 0 {
		return nil, nil
	}

	var media []*model.Media
	err := r.db.Where("moment_id IN ?", momentIDs).
		Order("sort_order ASC, created_at ASC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

// ListStorageKeys 全部已落库的 storage key（清理任务比对孤儿对象用）
func (r *MediaRepository) ListStorageKeys() ([]string, error) {
	var keys []string
	err := r.db.Model(&model.Media{}).Pluck("storage_key", &keys).Error
	return keys, err
}
