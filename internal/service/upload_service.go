package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/qs3c/trip_go_server/config"
	"github.com/qs3c/trip_go_server/internal/model/dto"
)

var (
	ErrTripIDRequired   = errors.New("行程ID不能为空")
	ErrFilenameRequired = errors.New("文件名不能为空")
	ErrFileTooLarge     = errors.New("文件过大")
)

type UploadService struct {
	storage ObjectStorage
	access  *AccessService
	cfg     *config.Config
}

func NewUploadService(storage ObjectStorage, access *AccessService, cfg *config.Config) *UploadService {
	return &UploadService{
		storage: storage,
		access:  access,
		cfg:     cfg,
	}
}

// Sign 生成预签名上传凭证。key 形如 trips/<tripId>/<media|attachments>/<random>_<sanitized>，
// 随机段保证同名文件并发上传不撞 key。签名时不触碰对象存储的存量（key 可能永远不会被上传，
// 该风险在 commit 时才对账）。
func (s *UploadService) Sign(userID int64, req *dto.SignUploadRequest) (*dto.SignUploadResponse, error) {
	// 缺字段是参数错误，先于鉴权校验，不读成 403
	if req.TripID <= 0 {
		return nil, ErrTripIDRequired
	}
	if strings.TrimSpace(req.Filename) == "" {
		return nil, ErrFilenameRequired
	}

	if _, err := s.access.Check(req.TripID, userID); err != nil {
		return nil, err
	}

	key, err := s.buildObjectKey(req.TripID, req.Kind, req.Filename)
	if err != nil {
		return nil, err
	}

	signedURL, err := s.storage.SignPutURL(key, req.ContentType, s.cfg.Upload.SignExpireSeconds)
	if err != nil {
		return nil, err
	}

	return &dto.SignUploadResponse{
		SignedURL:  signedURL,
		StorageKey: key,
		CDNUrl:     s.storage.PublicURL(key),
	}, nil
}

// ProxyUpload 直传路径：调用方直接送字节，这里生成同款 key 并同步上传到对象存储。
// 超限载荷在任何存储交互之前拒绝。上传期间占用本请求的连接，没有异步卸载。
func (s *UploadService) ProxyUpload(userID, tripID int64, kind, filename, contentType string, data []byte) (*dto.ProxyUploadResponse, error) {
	if tripID <= 0 {
		return nil, ErrTripIDRequired
	}
	if strings.TrimSpace(filename) == "" {
		return nil, ErrFilenameRequired
	}

	if _, err := s.access.Check(tripID, userID); err != nil {
		return nil, err
	}
	if int64(len(data)) > s.cfg.Upload.MaxSize {
		return nil, ErrFileTooLarge
	}

	key, err := s.buildObjectKey(tripID, kind, filename)
	if err != nil {
		return nil, err
	}

	if err := s.storage.PutObject(key, data, contentType); err != nil {
		return nil, err
	}

	return &dto.ProxyUploadResponse{
		StorageKey:  key,
		CDNUrl:      s.storage.PublicURL(key),
		SizeBytes:   int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (s *UploadService) buildObjectKey(tripID int64, kind, filename string) (string, error) {
	folder := "attachments"
	if kind == "media" {
		folder = "media"
	}

	random, err := randomHex(8)
	if err != nil {
		return "", err
	}

	name := sanitizeFilename(filename, s.cfg.Upload.MaxFilenameLen)
	return fmt.Sprintf("trips/%d/%s/%s_%s", tripID, folder, random, name), nil
}

// sanitizeFilename 把文件名限制到 [a-zA-Z0-9._-]，其余字符替换为下划线；
// 超长时保留末尾 maxLen 个字符（扩展名在末尾）。
func sanitizeFilename(name string, maxLen int) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	s := b.String()
	if len(s) > maxLen {
		s = s[len(s)-maxLen:]
	}
	return s
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
