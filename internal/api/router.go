package api

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/qs3c/trip_go_server/config"
	"github.com/qs3c/trip_go_server/internal/api/handler"
	"github.com/qs3c/trip_go_server/internal/api/middleware"
	"github.com/qs3c/trip_go_server/internal/service"
)

type Router struct {
	healthHandler     *handler.HealthHandler
	userHandler       *handler.UserHandler
	tripHandler       *handler.TripHandler
	momentHandler     *handler.MomentHandler
	uploadHandler     *handler.UploadHandler
	mediaHandler      *handler.MediaHandler
	attachmentHandler *handler.AttachmentHandler
	identityService   *service.IdentityService
	rdb               *redis.Client
	cfg               *config.Config
}

func NewRouter(
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	tripHandler *handler.TripHandler,
	momentHandler *handler.MomentHandler,
	uploadHandler *handler.UploadHandler,
	mediaHandler *handler.MediaHandler,
	attachmentHandler *handler.AttachmentHandler,
	identityService *service.IdentityService,
	rdb *redis.Client,
	cfg *config.Config,
) *Router {
	return &Router{
		healthHandler:     healthHandler,
		userHandler:       userHandler,
		tripHandler:       tripHandler,
		momentHandler:     momentHandler,
		uploadHandler:     uploadHandler,
		mediaHandler:      mediaHandler,
		attachmentHandler: attachmentHandler,
		identityService:   identityService,
		rdb:               rdb,
		cfg:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	// 公开接口 - 健康检查
	engine.GET("/health", r.healthHandler.Check)

	// 业务接口全部要求身份头
	api := engine.Group("/api")
	api.Use(middleware.RateLimit(r.rdb, r.cfg.RateLimit))
	api.Use(middleware.Identity(r.identityService))
	{
		// 当前用户
		api.GET("/me", r.userHandler.Me)

		// 行程
		trips := api.Group("/trips")
		{
			trips.GET("", r.tripHandler.List)
			trips.POST("", r.tripHandler.Create)
			trips.GET("/:id", r.tripHandler.Get)
			trips.GET("/:id/moments", r.momentHandler.List)
			trips.POST("/:id/moments", r.momentHandler.Create)
		}

		// 上传
		uploads := api.Group("/uploads")
		{
			uploads.POST("/sign", r.uploadHandler.Sign)
			uploads.POST("/proxy", r.uploadHandler.Proxy)
		}

		// 落库登记
		api.POST("/media/commit", r.mediaHandler.Commit)
		api.POST("/attachments/commit", r.attachmentHandler.Commit)
	}

	return engine
}
