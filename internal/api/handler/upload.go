package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Sign 生成预签名上传地址
// POST /api/uploads/sign
func (h *UploadHandler) Sign(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.SignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	result, err := h.uploadService.Sign(userID, &req)
	if err != nil {
		switch err {
		case service.ErrNoAccess:
			response.PermissionError(c, err.Error())
		case service.ErrTripIDRequired, service.ErrFilenameRequired:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, result)
}

// Proxy 服务端直传，multipart 表单：tripId、kind、file
// POST /api/uploads/proxy
func (h *UploadHandler) Proxy(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	tripID, err := strconv.ParseInt(c.PostForm("tripId"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的行程ID")
		return
	}
	kind := c.PostForm("kind")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ParamError(c, "缺少上传文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	result, err := h.uploadService.ProxyUpload(userID, tripID, kind,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		switch err {
		case service.ErrNoAccess:
			response.PermissionError(c, err.Error())
		case service.ErrTripIDRequired, service.ErrFilenameRequired, service.ErrFileTooLarge:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, result)
}
