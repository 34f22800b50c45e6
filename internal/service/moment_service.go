package service

import (
	"errors"
	"time"

	"github.com/qs3c/trip_go_server/internal/model"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/repository"
)

var ErrInvalidMomentTime = errors.New("时刻时间格式错误，应为 RFC3339")

const dayKeyLayout = "2006-01-02"

type MomentService struct {
	momentRepo     *repository.MomentRepository
	mediaRepo      *repository.MediaRepository
	attachmentRepo *repository.AttachmentRepository
	access         *AccessService
}

func NewMomentService(
	momentRepo *repository.MomentRepository,
	mediaRepo *repository.MediaRepository,
	attachmentRepo *repository.AttachmentRepository,
	access *AccessService,
) *MomentService {
	return &MomentService{
		momentRepo:     momentRepo,
		mediaRepo:      mediaRepo,
		attachmentRepo: attachmentRepo,
		access:         access,
	}
}

// Create 创建时刻。除行程/创建者外所有字段可缺席，缺席落 NULL（空字符串不折算为 NULL）。
func (s *MomentService) Create(tripID, userID int64, req *dto.CreateMomentRequest) (int64, error) {
	if _, err := s.access.Check(tripID, userID); err != nil {
		return 0, err
	}

	moment := &model.Moment{
		TripID:       tripID,
		CreatedBy:    userID,
		Story:        req.Story,
		LocationName: req.LocationName,
	}

	if req.MomentTime != nil && *req.MomentTime != "" {
		t, err := time.Parse(time.RFC3339, *req.MomentTime)
		if err != nil {
			return 0, ErrInvalidMomentTime
		}
		moment.MomentTime = &t
	}

	if err := s.momentRepo.Create(moment); err != nil {
		return 0, err
	}

	return moment.ID, nil
}

// List 行程下的时刻聚合，生效时间升序。媒体和附件各用一条批量 IN 查询取回
// （与时刻数无关），再按父时刻分组；每个聚合的 media/attachments 恒为非 nil 序列。
func (s *MomentService) List(tripID, userID int64) ([]*dto.MomentItem, error) {
	if _, err := s.access.Check(tripID, userID); err != nil {
		return nil, err
	}

	moments, err := s.momentRepo.ListByTripID(tripID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.MomentItem, len(moments))
	if len(moments) == 0 {
		return items, nil
	}

	momentIDs := make([]int64, len(moments))
	for i, m := range moments {
		momentIDs[i] = m.ID
	}

	mediaRows, err := s.mediaRepo.ListByMomentIDs(momentIDs)
	if err != nil {
		return nil, err
	}
	attachmentRows, err := s.attachmentRepo.ListByMomentIDs(momentIDs)
	if err != nil {
		return nil, err
	}

	// 按父时刻分组，保持各组内的查询顺序
	mediaByMoment := make(map[int64][]dto.MediaItem)
	for _, m := range mediaRows {
		mediaByMoment[m.MomentID] = append(mediaByMoment[m.MomentID], dto.MediaItem{
			ID:         m.ID,
			Type:       m.Type,
			StorageKey: m.StorageKey,
			CDNUrl:     m.CDNUrl,
			ThumbURL:   m.ThumbURL,
			SizeBytes:  m.SizeBytes,
			SortOrder:  m.SortOrder,
		})
	}

	attachmentsByMoment := make(map[int64][]dto.AttachmentItem)
	for _, a := range attachmentRows {
		if a.MomentID == nil {
			continue
		}
		attachmentsByMoment[*a.MomentID] = append(attachmentsByMoment[*a.MomentID], dto.AttachmentItem{
			ID:         a.ID,
			MomentID:   a.MomentID,
			UploadedBy: a.UploadedBy,
			Type:       a.Type,
			Title:      a.Title,
			StorageKey: a.StorageKey,
			CDNUrl:     a.CDNUrl,
			URL:        a.URL,
			SizeBytes:  a.SizeBytes,
		})
	}

	for i, m := range moments {
		item := &dto.MomentItem{
			ID:           m.ID,
			TripID:       m.TripID,
			CreatedBy:    m.CreatedBy,
			Story:        m.Story,
			LocationName: m.LocationName,
			DayKey:       m.EffectiveTime().UTC().Format(dayKeyLayout),
			CreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339),
			Media:        mediaByMoment[m.ID],
			Attachments:  attachmentsByMoment[m.ID],
		}
		if m.MomentTime != nil {
			ts := m.MomentTime.UTC().Format(time.RFC3339)
			item.MomentTime = &ts
		}
		if item.Media == nil {
			item.Media = []dto.MediaItem{}
		}
		if item.Attachments == nil {
			item.Attachments = []dto.AttachmentItem{}
		}
		items[i] = item
	}

	return items, nil
}
