package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/service"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// Commit 媒体落库（上传完成后登记）
// POST /api/media/commit
func (h *MediaHandler) Commit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CommitMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	id, err := h.mediaService.CommitMedia(userID, &req)
	if err != nil {
		switch err {
		case service.ErrMediaFieldsMissing:
			response.ParamError(c, err.Error())
		case service.ErrNoAccess:
			response.PermissionError(c, err.Error())
		case service.ErrMomentNotInTrip:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, dto.CommitResponse{ID: id})
}
