package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/config"
	"github.com/qs3c/trip_go_server/internal/model"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/repository"
)

var (
	ErrTripNotFound  = errors.New("行程不存在")
	ErrTitleRequired = errors.New("标题不能为空")
	ErrInvalidDate   = errors.New("日期格式错误，应为 YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

type TripService struct {
	tripRepo  *repository.TripRepository
	mediaRepo *repository.MediaRepository
	access    *AccessService
	cfg       *config.Config
}

func NewTripService(
	tripRepo *repository.TripRepository,
	mediaRepo *repository.MediaRepository,
	access *AccessService,
	cfg *config.Config,
) *TripService {
	return &TripService{
		tripRepo:  tripRepo,
		mediaRepo: mediaRepo,
		access:    access,
		cfg:       cfg,
	}
}

// Create 创建行程。行程行和创建者的 owner 成员行在同一事务内提交，要么都可见要么都不可见。
func (s *TripService) Create(userID int64, req *dto.CreateTripRequest) (*dto.TripResponse, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	timezone := s.cfg.Trip.DefaultTimezone
	if req.Timezone != nil && *req.Timezone != "" {
		timezone = *req.Timezone
	}

	trip := &model.Trip{
		OwnerID:   userID,
		Title:     req.Title,
		StartDate: startDate,
		EndDate:   endDate,
		Timezone:  timezone,
	}

	if err := s.tripRepo.CreateWithOwner(trip); err != nil {
		return nil, err
	}

	return s.buildTripResponse(trip), nil
}

// List 用户的行程列表，创建时间倒序
func (s *TripService) List(userID int64) ([]*dto.TripSummary, error) {
	rows, err := s.tripRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TripSummary, len(rows))
	for i, row := range rows {
		items[i] = &dto.TripSummary{
			ID:        row.ID,
			OwnerID:   row.OwnerID,
			Title:     row.Title,
			StartDate: formatDate(row.StartDate),
			EndDate:   formatDate(row.EndDate),
			Timezone:  row.Timezone,
			CoverURL:  row.CoverURL,
			CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return items, nil
}

// Get 行程详情。行程不存在 → ErrTripNotFound（404），与鉴权结果无关；存在但非活跃成员 → ErrNoAccess（403）。
func (s *TripService) Get(tripID, userID int64) (*dto.TripResponse, error) {
	trip, err := s.tripRepo.GetByID(tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if _, err := s.access.Check(tripID, userID); err != nil {
		return nil, err
	}

	return s.buildTripResponse(trip), nil
}

func (s *TripService) buildTripResponse(trip *model.Trip) *dto.TripResponse {
	resp := &dto.TripResponse{
		ID:        trip.ID,
		OwnerID:   trip.OwnerID,
		Title:     trip.Title,
		StartDate: formatDate(trip.StartDate),
		EndDate:   formatDate(trip.EndDate),
		Timezone:  trip.Timezone,
		CreatedAt: trip.CreatedAt.UTC().Format(time.RFC3339),
	}

	if trip.CoverMediaID != nil {
		if cover, err := s.mediaRepo.GetByID(*trip.CoverMediaID); err == nil {
			resp.CoverURL = &cover.CDNUrl
		}
	}

	return resp
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
