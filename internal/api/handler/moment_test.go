package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/repository"
	"github.com/qs3c/trip_go_server/internal/service"
	"github.com/qs3c/trip_go_server/internal/testutil"
)

func setupMomentHandler(t *testing.T) (*MomentHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	momentService := service.NewMomentService(
		repository.NewMomentRepository(db),
		repository.NewMediaRepository(db),
		repository.NewAttachmentRepository(db),
		service.NewAccessService(repository.NewMemberRepository(db)),
	)
	return NewMomentHandler(momentService), db, func() { testutil.CleanupTestDB(t, db) }
}

func TestMomentHandler_Create_Success(t *testing.T) {
	handler, db, cleanup := setupMomentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.POST("/trips/:id/moments", handler.Create)

	w := performRequest(router, "POST", "/trips/"+itoa(trip.ID)+"/moments", dto.CreateMomentRequest{
		Story:      strPtr("arrived"),
		MomentTime: strPtr("2026-04-01T10:00:00Z"),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateMomentResponse
	parseJSON(t, w, &resp)
	assert.NotZero(t, resp.ID)
}

func TestMomentHandler_Create_InvalidMomentTime(t *testing.T) {
	handler, db, cleanup := setupMomentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.POST("/trips/:id/moments", handler.Create)

	w := performRequest(router, "POST", "/trips/"+itoa(trip.ID)+"/moments", dto.CreateMomentRequest{
		MomentTime: strPtr("yesterday"),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindInvalidRequest, parseError(t, w).Error)
}

func TestMomentHandler_Create_Forbidden(t *testing.T) {
	handler, db, cleanup := setupMomentHandler(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	outsider := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, owner.ID)

	router := gin.New()
	router.Use(mockIdentity(outsider.ID))
	router.POST("/trips/:id/moments", handler.Create)

	w := performRequest(router, "POST", "/trips/"+itoa(trip.ID)+"/moments", dto.CreateMomentRequest{})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMomentHandler_List_Aggregated(t *testing.T) {
	handler, db, cleanup := setupMomentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)

	ts := time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC)
	moment := testutil.TestMoment(t, db, trip.ID, user.ID, testutil.WithMomentTime(ts))
	testutil.TestMedia(t, db, trip.ID, moment.ID)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.GET("/trips/:id/moments", handler.List)

	w := performRequest(router, "GET", "/trips/"+itoa(trip.ID)+"/moments", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []dto.MomentItem
	parseJSON(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "2026-04-03", items[0].DayKey)
	assert.Len(t, items[0].Media, 1)
	assert.NotNil(t, items[0].Attachments)
}

func TestMomentHandler_List_BadTripID(t *testing.T) {
	handler, db, cleanup := setupMomentHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.GET("/trips/:id/moments", handler.List)

	w := performRequest(router, "GET", "/trips/nope/moments", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
