package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

// TripWithCover 列表查询行：行程字段 + LEFT JOIN 出来的封面 URL（无封面为 NULL）
type TripWithCover struct {
	ID        int64
	OwnerID   int64
	Title     string
	StartDate *time.Time
	EndDate   *time.Time
	Timezone  string
	CreatedAt time.Time
	CoverURL  *string
}

// CreateWithOwner 同一事务内写入行程行和 owner 成员行。
// 成员行插入失败则整体回滚，不会留下没有 owner 成员的孤儿行程；
// 成员行唯一键冲突（重复插入）视为成功，不中断事务。
func (r *TripRepository) CreateWithOwner(trip *model.Trip) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}

		member := &model.TripMember{
			TripID: trip.ID,
			UserID: trip.OwnerID,
			Role:   model.RoleOwner,
			Status: model.MemberStatusActive,
		}
		if err := tx.Create(member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}
		return nil
	})
}

func (r *TripRepository) GetByID(id int64) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Where("id = ?", id).First(&trip).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByUserID 用户可见的行程列表（活跃成员关系），按创建时间倒序，封面 LEFT JOIN 解析
func (r *TripRepository) ListByUserID(userID int64) ([]*TripWithCover, error) {
	var rows []*TripWithCover
	err := r.db.Table("trips").
		Select("trips.id, trips.owner_id, trips.title, trips.start_date, trips.end_date, trips.timezone, trips.created_at, media.cdn_url AS cover_url").
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id AND trip_members.user_id = ? AND trip_members.status = ?", userID, model.MemberStatusActive).
		Joins("LEFT JOIN media ON media.id = trips.cover_media_id").
		Order("trips.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
