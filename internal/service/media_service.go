package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/repository"
)

var (
	ErrMomentNotInTrip         = errors.New("时刻不属于该行程")
	ErrAttachmentSourceMissing = errors.New("storageKey 和 url 至少提供一个")
	ErrMediaFieldsMissing      = errors.New("缺少必填字段：tripId、momentId、type、storageKey")
	ErrAttachmentFieldsMissing = errors.New("缺少必填字段：tripId、type")
)

// MediaService 上传成功后的落库：把对象存储位置记到时刻/行程上。
type MediaService struct {
	mediaRepo      *repository.MediaRepository
	attachmentRepo *repository.AttachmentRepository
	momentRepo     *repository.MomentRepository
	access         *AccessService
	storage        ObjectStorage
}

func NewMediaService(
	mediaRepo *repository.MediaRepository,
	attachmentRepo *repository.AttachmentRepository,
	momentRepo *repository.MomentRepository,
	access *AccessService,
	storage ObjectStorage,
) *MediaService {
	return &MediaService{
		mediaRepo:      mediaRepo,
		attachmentRepo: attachmentRepo,
		momentRepo:     momentRepo,
		access:         access,
		storage:        storage,
	}
}

// CommitMedia 必填字段先于鉴权校验（缺字段是客户端参数错误，不该读成 403）。
// 鉴权后校验时刻确实属于给定行程——即使调用方是另一个行程的活跃成员，
// 也不允许跨行程注入（校验失败按 404 处理）。单条插入在事务内执行。
func (s *MediaService) CommitMedia(userID int64, req *dto.CommitMediaRequest) (int64, error) {
	if req.TripID <= 0 || req.MomentID <= 0 || req.Type == "" || req.StorageKey == "" {
		return 0, ErrMediaFieldsMissing
	}

	if _, err := s.access.Check(req.TripID, userID); err != nil {
		return 0, err
	}

	if err := s.verifyMomentInTrip(req.MomentID, req.TripID); err != nil {
		return 0, err
	}

	media := &model.Media{
		TripID:     req.TripID,
		MomentID:   req.MomentID,
		Type:       req.Type,
		StorageKey: req.StorageKey,
		CDNUrl:     s.resolveCDNUrl(req.CDNUrl, req.StorageKey),
	}
	if req.SizeBytes != nil {
		media.SizeBytes = *req.SizeBytes
	}
	if req.SortOrder != nil {
		media.SortOrder = *req.SortOrder
	}

	if err := s.mediaRepo.Create(media); err != nil {
		return 0, err
	}

	return media.ID, nil
}

// CommitAttachment 附件落库，moment 可缺席（行程级附件）；给了 moment 就照媒体同款校验。
// 记录上传者。纯外链附件（url 非空、无 storage key）也走这里。
func (s *MediaService) CommitAttachment(userID int64, req *dto.CommitAttachmentRequest) (int64, error) {
	if req.TripID <= 0 || req.Type == "" {
		return 0, ErrAttachmentFieldsMissing
	}
	if req.StorageKey == nil && req.URL == nil {
		return 0, ErrAttachmentSourceMissing
	}

	if _, err := s.access.Check(req.TripID, userID); err != nil {
		return 0, err
	}

	if req.MomentID != nil {
		if err := s.verifyMomentInTrip(*req.MomentID, req.TripID); err != nil {
			return 0, err
		}
	}

	attachment := &model.Attachment{
		TripID:     req.TripID,
		MomentID:   req.MomentID,
		UploadedBy: userID,
		Type:       req.Type,
		Title:      req.Title,
		StorageKey: req.StorageKey,
		URL:        req.URL,
		CDNUrl:     req.CDNUrl,
	}
	if attachment.CDNUrl == nil && req.StorageKey != nil {
		url := s.storage.PublicURL(*req.StorageKey)
		attachment.CDNUrl = &url
	}
	if req.SizeBytes != nil {
		attachment.SizeBytes = *req.SizeBytes
	}

	if err := s.attachmentRepo.Create(attachment); err != nil {
		return 0, err
	}

	return attachment.ID, nil
}

func (s *MediaService) verifyMomentInTrip(momentID, tripID int64) error {
	moment, err := s.momentRepo.GetByID(momentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMomentNotInTrip
		}
		return err
	}
	if moment.TripID != tripID {
		return ErrMomentNotInTrip
	}
	return nil
}

func (s *MediaService) resolveCDNUrl(provided *string, storageKey string) string {
	if provided != nil && *provided != "" {
		return *provided
	}
	return s.storage.PublicURL(storageKey)
}
