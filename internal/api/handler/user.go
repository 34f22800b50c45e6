package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me 当前身份（身份中间件已完成解析，这里只回读上下文）
// GET /api/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}
	email, _ := middleware.GetUserEmail(c)

	response.OK(c, dto.MeResponse{
		UserID: userID,
		Email:  email,
	})
}
