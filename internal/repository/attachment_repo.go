package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(attachment *model.Attachment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(attachment).Error
	})
}

// ListByMomentIDs 一次批量取出整组时刻的附件行，组内按创建时间升序
func (r *AttachmentRepository) ListByMomentIDs(momentIDs []int64) ([]*model.Attachment, error) {
	if len(momentIDs) == 0 {
		return nil, nil
	}

	var attachments []*model.Attachment
	err := r.db.Where("moment_id IN ?", momentIDs).
		Order("created_at ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// ListStorageKeys 全部已落库的 storage key（不含纯外链附件）
func (r *AttachmentRepository) ListStorageKeys() ([]string, error) {
	var keys []string
	err := r.db.Model(&model.Attachment{}).
		Where("storage_key IS NOT NULL").
		Pluck("storage_key", &keys).Error
	return keys, err
}
