package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/repository"
	"github.com/qs3c/trip_go_server/internal/service"
	"github.com/qs3c/trip_go_server/internal/testutil"
)

func setupMediaService(t *testing.T) (*service.MediaService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	mediaService := service.NewMediaService(
		repository.NewMediaRepository(db),
		repository.NewAttachmentRepository(db),
		repository.NewMomentRepository(db),
		service.NewAccessService(repository.NewMemberRepository(db)),
		newStubStorage(),
	)
	return mediaService, db, func() { testutil.CleanupTestDB(t, db) }
}

func TestMediaHandler_Commit_Success(t *testing.T) {
	mediaService, db, cleanup := setupMediaService(t)
	defer cleanup()
	handler := NewMediaHandler(mediaService)

	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)
	moment := testutil.TestMoment(t, db, trip.ID, user.ID)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.POST("/media/commit", handler.Commit)

	w := performRequest(router, "POST", "/media/commit", dto.CommitMediaRequest{
		TripID:     trip.ID,
		MomentID:   moment.ID,
		Type:       "photo",
		StorageKey: "trips/1/media/abc_pic.jpg",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CommitResponse
	parseJSON(t, w, &resp)
	assert.NotZero(t, resp.ID)
}

// 跨行程注入按 404 拒绝
func TestMediaHandler_Commit_CrossTrip(t *testing.T) {
	mediaService, db, cleanup := setupMediaService(t)
	defer cleanup()
	handler := NewMediaHandler(mediaService)

	user := testutil.TestUser(t, db)
	tripA := testutil.TestTrip(t, db, user.ID)
	tripB := testutil.TestTrip(t, db, user.ID)
	momentB := testutil.TestMoment(t, db, tripB.ID, user.ID)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.POST("/media/commit", handler.Commit)

	w := performRequest(router, "POST", "/media/commit", dto.CommitMediaRequest{
		TripID:     tripA.ID,
		MomentID:   momentB.ID,
		Type:       "photo",
		StorageKey: "trips/1/media/evil.jpg",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.KindNotFound, parseError(t, w).Error)
}

// type/storageKey 缺席报 400，不落库
func TestMediaHandler_Commit_FieldsMissing(t *testing.T) {
	mediaService, db, cleanup := setupMediaService(t)
	defer cleanup()
	handler := NewMediaHandler(mediaService)

	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)
	moment := testutil.TestMoment(t, db, trip.ID, user.ID)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.POST("/media/commit", handler.Commit)

	w := performRequest(router, "POST", "/media/commit", dto.CommitMediaRequest{
		TripID:   trip.ID,
		MomentID: moment.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindInvalidRequest, parseError(t, w).Error)

	var count int64
	assert.NoError(t, db.Model(&model.Media{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMediaHandler_Commit_Forbidden(t *testing.T) {
	mediaService, db, cleanup := setupMediaService(t)
	defer cleanup()
	handler := NewMediaHandler(mediaService)

	owner := testutil.TestUser(t, db)
	outsider := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, owner.ID)
	moment := testutil.TestMoment(t, db, trip.ID, owner.ID)

	router := gin.New()
	router.Use(mockIdentity(outsider.ID))
	router.POST("/media/commit", handler.Commit)

	w := performRequest(router, "POST", "/media/commit", dto.CommitMediaRequest{
		TripID:     trip.ID,
		MomentID:   moment.ID,
		Type:       "photo",
		StorageKey: "trips/1/media/x.jpg",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
