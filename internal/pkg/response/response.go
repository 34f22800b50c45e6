package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误类别（machine-readable kind），HTTP 状态码即错误语义
const (
	KindInvalidRequest  = "invalid_request"
	KindUnauthenticated = "unauthenticated"
	KindForbidden       = "forbidden"
	KindNotFound        = "not_found"
	KindRateLimited     = "rate_limited"
	KindInternalError   = "internal_error"
)

// 错误类别对应的默认消息
var kindMessages = map[string]string{
	KindInvalidRequest:  "参数错误",
	KindUnauthenticated: "缺少身份信息",
	KindForbidden:       "权限不足",
	KindNotFound:        "资源不存在",
	KindRateLimited:     "请求过于频繁",
	KindInternalError:   "服务器内部错误",
}

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OK 200 成功响应，payload 直接作为响应体
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error 错误响应
func Error(c *gin.Context, status int, kind, message string) {
	if message == "" {
		message = kindMessages[kind]
	}
	c.JSON(status, ErrorBody{
		Error:   kind,
		Message: message,
	})
}

// ParamError 400 参数错误
func ParamError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, KindInvalidRequest, message)
}

// AuthError 401 缺少身份
func AuthError(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, KindUnauthenticated, message)
}

// PermissionError 403 无行程访问权
func PermissionError(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, KindForbidden, message)
}

// NotFoundError 404 资源不存在
func NotFoundError(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, KindNotFound, message)
}

// RateLimitError 429 触发限流
func RateLimitError(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, KindRateLimited, message)
}

// ServerError 500 服务器错误
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, KindInternalError, message)
}
