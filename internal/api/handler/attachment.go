package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/service"
)

type AttachmentHandler struct {
	mediaService *service.MediaService
}

func NewAttachmentHandler(mediaService *service.MediaService) *AttachmentHandler {
	return &AttachmentHandler{
		mediaService: mediaService,
	}
}

// Commit 附件落库，支持对象存储件和纯外链两种来源
// POST /api/attachments/commit
func (h *AttachmentHandler) Commit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CommitAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	id, err := h.mediaService.CommitAttachment(userID, &req)
	if err != nil {
		switch err {
		case service.ErrNoAccess:
			response.PermissionError(c, err.Error())
		case service.ErrAttachmentFieldsMissing, service.ErrAttachmentSourceMissing:
			response.ParamError(c, err.Error())
		case service.ErrMomentNotInTrip:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, dto.CommitResponse{ID: id})
}
