package oss

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/qs3c/trip_go_server/config"
)

type Client struct {
	client     *oss.Client
	bucket     *oss.Bucket
	bucketName string
	cdnDomain  string
}

func NewClient(cfg *config.OSSConfig) (*Client, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	return &Client{
		client:     client,
		bucket:     bucket,
		bucketName: cfg.BucketName,
		cdnDomain:  cfg.CDNDomain,
	}, nil
}

// SignPutURL 生成限时上传凭证（预签名 PUT URL）。签名时不检查对象是否存在，
// 签了未传、传了未提交的孤儿 key 由 cmd/cleanup 离线回收。
func (c *Client) SignPutURL(objectKey, contentType string, expireSeconds int64) (string, error) {
	var options []oss.Option
	if contentType != "" {
		options = append(options, oss.ContentType(contentType))
	}

	signedURL, err := c.bucket.SignURL(objectKey, oss.HTTPPut, expireSeconds, options...)
	if err != nil {
		return "", fmt.Errorf("failed to sign put url: %w", err)
	}

	return signedURL, nil
}

// PutObject 同步上传（直传中转路径）
func (c *Client) PutObject(objectKey string, data []byte, contentType string) error {
	var options []oss.Option
	if contentType != "" {
		options = append(options, oss.ContentType(contentType))
	}

	if err := c.bucket.PutObject(objectKey, bytes.NewReader(data), options...); err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// Delete 删除对象
func (c *Client) Delete(objectKey string) error {
	if err := c.bucket.DeleteObject(objectKey); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// PublicURL 公开访问 URL：配置的 CDN 域名 + key
func (c *Client) PublicURL(objectKey string) string {
	if c.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", c.cdnDomain, objectKey)
	}
	return fmt.Sprintf("https://%s.%s/%s", c.bucketName, c.client.Config.Endpoint, objectKey)
}

// ListKeysOlderThan 列出指定前缀下、最后修改时间早于 cutoff 的对象 key（清理任务使用）
func (c *Client) ListKeysOlderThan(prefix string, cutoff time.Time) ([]string, error) {
	var keys []string
	marker := ""

	for {
		result, err := c.bucket.ListObjects(oss.Prefix(prefix), oss.Marker(marker), oss.MaxKeys(1000))
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		for _, obj := range result.Objects {
			if obj.LastModified.Before(cutoff) {
				keys = append(keys, obj.Key)
			}
		}

		if !result.IsTruncated {
			break
		}
		marker = result.NextMarker
	}

	return keys, nil
}

// ExtractObjectKey 从 URL 中提取 object key
func (c *Client) ExtractObjectKey(url string) string {
	if c.cdnDomain != "" {
		prefix := fmt.Sprintf("https://%s/", c.cdnDomain)
		if strings.HasPrefix(url, prefix) {
			return url[len(prefix):]
		}
	}

	// 标准 OSS URL: https://bucket-name.endpoint/path/to/object
	parts := strings.SplitN(url, "/", 4)
	if len(parts) == 4 {
		return parts[3]
	}

	return url
}
