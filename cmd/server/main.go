package main

import (
	"fmt"
	"log"

	"github.com/qs3c/trip_go_server/config"
	"github.com/qs3c/trip_go_server/internal/api"
	"github.com/qs3c/trip_go_server/internal/api/handler"
	"github.com/qs3c/trip_go_server/internal/database"
	"github.com/qs3c/trip_go_server/internal/model"
	"github.com/qs3c/trip_go_server/internal/pkg/oss"
	"github.com/qs3c/trip_go_server/internal/repository"
	"github.com/qs3c/trip_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 自动迁移
	if err := db.AutoMigrate(
		&model.User{},
		&model.Subscription{},
		&model.Trip{},
		&model.TripMember{},
		&model.Moment{},
		&model.Media{},
		&model.Attachment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化对象存储
	storage, err := oss.NewClient(&cfg.OSS)
	if err != nil {
		log.Fatalf("Failed to init oss client: %v", err)
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	tripRepo := repository.NewTripRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	momentRepo := repository.NewMomentRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// 初始化 Service
	identityService := service.NewIdentityService(userRepo, subRepo)
	accessService := service.NewAccessService(memberRepo)
	tripService := service.NewTripService(tripRepo, mediaRepo, accessService, cfg)
	momentService := service.NewMomentService(momentRepo, mediaRepo, attachmentRepo, accessService)
	uploadService := service.NewUploadService(storage, accessService, cfg)
	mediaService := service.NewMediaService(mediaRepo, attachmentRepo, momentRepo, accessService, storage)

	// 初始化 Handler
	healthHandler := handler.NewHealthHandler(db, rdb)
	userHandler := handler.NewUserHandler()
	tripHandler := handler.NewTripHandler(tripService)
	momentHandler := handler.NewMomentHandler(momentService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	attachmentHandler := handler.NewAttachmentHandler(mediaService)

	// 初始化 Router
	router := api.NewRouter(
		healthHandler,
		userHandler,
		tripHandler,
		momentHandler,
		uploadHandler,
		mediaHandler,
		attachmentHandler,
		identityService,
		rdb,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
