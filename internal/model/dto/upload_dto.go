package dto

// SignUploadRequest 预签名上传请求。kind 非 "media" 一律归入 attachments 目录。
type SignUploadRequest struct {
	TripID      int64  `json:"tripId"`
	Kind        string `json:"kind"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType,omitempty"`
	SizeBytes   int64  `json:"sizeBytes,omitempty"`
}

// SignUploadResponse 预签名上传响应
type SignUploadResponse struct {
	SignedURL  string `json:"signedUrl"`
	StorageKey string `json:"storageKey"`
	CDNUrl     string `json:"cdnUrl"`
}

// ProxyUploadResponse 直传（服务端中转）响应
type ProxyUploadResponse struct {
	StorageKey  string `json:"storageKey"`
	CDNUrl      string `json:"cdnUrl"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
}

// CommitMediaRequest 媒体落库请求（上传成功后调用）
type CommitMediaRequest struct {
	TripID     int64   `json:"tripId"`
	MomentID   int64   `json:"momentId"`
	Type       string  `json:"type"`
	StorageKey string  `json:"storageKey"`
	CDNUrl     *string `json:"cdnUrl,omitempty"`
	SizeBytes  *int64  `json:"sizeBytes,omitempty"`
	SortOrder  *int    `json:"sortOrder,omitempty"`
}

// CommitAttachmentRequest 附件落库请求，moment 可缺席（行程级附件）
type CommitAttachmentRequest struct {
	TripID     int64   `json:"tripId"`
	MomentID   *int64  `json:"momentId,omitempty"`
	Type       string  `json:"type"`
	Title      *string `json:"title,omitempty"`
	StorageKey *string `json:"storageKey,omitempty"`
	CDNUrl     *string `json:"cdnUrl,omitempty"`
	URL        *string `json:"url,omitempty"`
	SizeBytes  *int64  `json:"sizeBytes,omitempty"`
}

// CommitResponse 落库响应
type CommitResponse struct {
	ID int64 `json:"id"`
}
