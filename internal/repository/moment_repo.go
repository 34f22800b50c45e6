package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
)

type MomentRepository struct {
	db *gorm.DB
}

func NewMomentRepository(db *gorm.DB) *MomentRepository {
	return &MomentRepository{db: db}
}

func (r *MomentRepository) Create(moment *model.Moment) error {
	return r.db.Create(moment).Error
}

func (r *MomentRepository) GetByID(id int64) (*model.Moment, error) {
	var moment model.Moment
	err := r.db.Where("id = ?", id).First(&moment).Error
	if err != nil {
		return nil, err
	}
	return &moment, nil
}

// ListByTripID 行程下全部时刻，按生效时间升序（moment_time 缺席时用 created_at 代替）。
// COALESCE 在 MySQL 和 SQLite 上行为一致。
func (r *MomentRepository) ListByTripID(tripID int64) ([]*model.Moment, error) {
	var moments []*model.Moment
	err := r.db.Where("trip_id = ?", tripID).
		Order("COALESCE(moment_time, created_at) ASC").
		Find(&moments).Error
	if err != nil {
		return nil, err
	}
	return moments, nil
}
