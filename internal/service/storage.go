package service

// ObjectStorage 对象存储能力抽象：生成限时上传凭证、同步中转上传、公开 URL 推导。
// 生产实现是 internal/pkg/oss.Client，测试用假实现替换。
type ObjectStorage interface {
	SignPutURL(objectKey, contentType string, expireSeconds int64) (string, error)
	PutObject(objectKey string, data []byte, contentType string) error
	PublicURL(objectKey string) string
}
