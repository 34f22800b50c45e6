package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/trip_go_server/config"
	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/model/dto"
	"github.com/qs3c/trip_go_server/internal/pkg/response"
	"github.com/qs3c/trip_go_server/internal/repository"
	"github.com/qs3c/trip_go_server/internal/service"
	"github.com/qs3c/trip_go_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockIdentity 绕过身份中间件，直接注入已解析的用户
func mockIdentity(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "test@example.com")
		c.Next()
	}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func parseJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func strPtr(s string) *string { return &s }

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func setupTripHandler(t *testing.T) (*TripHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{
		Trip: config.TripConfig{DefaultTimezone: "America/New_York"},
	}
	tripService := service.NewTripService(
		repository.NewTripRepository(db),
		repository.NewMediaRepository(db),
		service.NewAccessService(repository.NewMemberRepository(db)),
		cfg,
	)
	return NewTripHandler(tripService), db, func() { testutil.CleanupTestDB(t, db) }
}

func TestTripHandler_Create_Success(t *testing.T) {
	handler, db, cleanup := setupTripHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.POST("/trips", handler.Create)

	w := performRequest(router, "POST", "/trips", dto.CreateTripRequest{
		Title:     "Road Trip",
		StartDate: strPtr("2026-07-01"),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var trip dto.TripResponse
	parseJSON(t, w, &trip)
	assert.NotZero(t, trip.ID)
	assert.Equal(t, "Road Trip", trip.Title)
	assert.Equal(t, "America/New_York", trip.Timezone)
}

func TestTripHandler_Create_MissingTitle(t *testing.T) {
	handler, db, cleanup := setupTripHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.POST("/trips", handler.Create)

	w := performRequest(router, "POST", "/trips", dto.CreateTripRequest{Title: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindInvalidRequest, parseError(t, w).Error)
}

func TestTripHandler_Create_Unauthenticated(t *testing.T) {
	handler, _, cleanup := setupTripHandler(t)
	defer cleanup()

	router := gin.New()
	// 不挂身份中间件
	router.POST("/trips", handler.Create)

	w := performRequest(router, "POST", "/trips", dto.CreateTripRequest{Title: "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.KindUnauthenticated, parseError(t, w).Error)
}

func TestTripHandler_Get_Success(t *testing.T) {
	handler, db, cleanup := setupTripHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID, testutil.WithTripTitle("Visible"))

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.GET("/trips/:id", handler.Get)

	w := performRequest(router, "GET", "/trips/"+itoa(trip.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got dto.TripResponse
	parseJSON(t, w, &got)
	assert.Equal(t, "Visible", got.Title)
}

func TestTripHandler_Get_NotFound(t *testing.T) {
	handler, db, cleanup := setupTripHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.GET("/trips/:id", handler.Get)

	w := performRequest(router, "GET", "/trips/99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.KindNotFound, parseError(t, w).Error)
}

func TestTripHandler_Get_Forbidden(t *testing.T) {
	handler, db, cleanup := setupTripHandler(t)
	defer cleanup()

	owner := testutil.TestUser(t, db)
	outsider := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, owner.ID)

	router := gin.New()
	router.Use(mockIdentity(outsider.ID))
	router.GET("/trips/:id", handler.Get)

	w := performRequest(router, "GET", "/trips/"+itoa(trip.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, response.KindForbidden, parseError(t, w).Error)
}

func TestTripHandler_Get_BadID(t *testing.T) {
	handler, db, cleanup := setupTripHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.GET("/trips/:id", handler.Get)

	w := performRequest(router, "GET", "/trips/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripHandler_List(t *testing.T) {
	handler, db, cleanup := setupTripHandler(t)
	defer cleanup()

	user := testutil.TestUser(t, db)
	testutil.TestTrip(t, db, user.ID, testutil.WithTripTitle("Mine"))

	router := gin.New()
	router.Use(mockIdentity(user.ID))
	router.GET("/trips", handler.List)

	w := performRequest(router, "GET", "/trips", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []dto.TripSummary
	parseJSON(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Mine", items[0].Title)
}
