package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/service"
)

const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"

	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
)

// Identity 可信请求头身份中间件：每个请求先解析身份，再进入任何路由逻辑。
// X-User-Email 必填（去空白、小写），缺失统一 401；X-User-Name 可选，只用于刷新展示名。
// 解析出的用户按参数传递（gin context），不落任何进程级全局状态。
func Identity(identityService *service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserEmail)))
		if email == "" {
			response.AuthError(c, "缺少 X-User-Email 请求头")
			c.Abort()
			return
		}

		name := strings.TrimSpace(c.GetHeader(HeaderUserName))

		user, err := identityService.Resolve(email, name)
		if err != nil {
			response.ServerError(c, "")
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserEmailKey, user.Email)
		c.Next()
	}
}

// GetUserID 从上下文获取用户 ID
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}

// GetUserEmail 从上下文获取归一化邮箱
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	e, ok := email.(string)
	return e, ok
}
