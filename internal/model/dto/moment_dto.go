package dto

// CreateMomentRequest 创建时刻请求。三个字段都可缺席；缺席落 NULL，空字符串原样存储。
type CreateMomentRequest struct {
	Story        *string `json:"story,omitempty"`
	LocationName *string `json:"locationName,omitempty"`
	MomentTime   *string `json:"momentTime,omitempty"` // RFC3339
}

// CreateMomentResponse 创建时刻响应
type CreateMomentResponse struct {
	ID int64 `json:"id"`
}

// MomentItem 时刻聚合，media/attachments 恒为有序序列（可能为空），不会缺席
type MomentItem struct {
	ID           int64            `json:"id"`
	TripID       int64            `json:"tripId"`
	CreatedBy    int64            `json:"createdBy"`
	Story        *string          `json:"story"`
	LocationName *string          `json:"locationName"`
	MomentTime   *string          `json:"momentTime"`
	DayKey       string           `json:"dayKey"`
	CreatedAt    string           `json:"createdAt"`
	Media        []MediaItem      `json:"media"`
	Attachments  []AttachmentItem `json:"attachments"`
}

// MediaItem 时刻下的媒体项
type MediaItem struct {
	ID         int64   `json:"id"`
	Type       string  `json:"type"`
	StorageKey string  `json:"storageKey"`
	CDNUrl     string  `json:"cdnUrl"`
	ThumbURL   *string `json:"thumbUrl,omitempty"`
	SizeBytes  int64   `json:"sizeBytes"`
	SortOrder  int     `json:"sortOrder"`
}

// AttachmentItem 时刻下的附件项
type AttachmentItem struct {
	ID         int64   `json:"id"`
	MomentID   *int64  `json:"momentId,omitempty"`
	UploadedBy int64   `json:"uploadedBy"`
	Type       string  `json:"type"`
	Title      *string `json:"title,omitempty"`
	StorageKey *string `json:"storageKey,omitempty"`
	CDNUrl     *string `json:"cdnUrl,omitempty"`
	URL        *string `json:"url,omitempty"`
	SizeBytes  int64   `json:"sizeBytes"`
}
