package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/service"
)

type MomentHandler struct {
	momentService *service.MomentService
}

func NewMomentHandler(momentService *service.MomentService) *MomentHandler {
	return &MomentHandler{
		momentService: momentService,
	}
}

// List 行程下的时刻聚合列表
// GET /api/trips/:id/moments
func (h *MomentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的行程ID")
		return
	}

	items, err := h.momentService.List(tripID, userID)
	if err != nil {
		switch err {
		case service.ErrNoAccess:
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, items)
}

// Create 创建时刻
// POST /api/trips/:id/moments
func (h *MomentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	tripID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的行程ID")
		return
	}

	var req dto.CreateMomentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	id, err := h.momentService.Create(tripID, userID, &req)
	if err != nil {
		switch err {
		case service.ErrNoAccess:
			response.PermissionError(c, err.Error())
		case service.ErrInvalidMomentTime:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, dto.CreateMomentResponse{ID: id})
}
