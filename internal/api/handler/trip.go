package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/service"
)

type TripHandler struct {
	tripService *service.TripService
}

func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{
		tripService: tripService,
	}
}

// List 行程列表
// GET /api/trips
func (h *TripHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	items, err := h.tripService.List(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.OK(c, items)
}

// Create 创建行程
// POST /api/trips
func (h *TripHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	trip, err := h.tripService.Create(userID, &req)
	if err != nil {
		switch err {
		case service.ErrTitleRequired, service.ErrInvalidDate:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Created(c, trip)
}

// Get 行程详情
// GET /api/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
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

	trip, err := h.tripService.Get(tripID, userID)
	if err != nil {
		switch err {
		case service.ErrTripNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrNoAccess:
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.OK(c, trip)
}
