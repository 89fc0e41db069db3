package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	_ "github.com/citysphere/citysphere-api/docs"
	"github.com/citysphere/citysphere-api/internal/api/handler"
	"github.com/citysphere/citysphere-api/internal/api/middleware"
	"github.com/citysphere/citysphere-api/internal/core/ports"
	"github.com/citysphere/citysphere-api/internal/core/service"
	"github.com/citysphere/citysphere-api/internal/infrastructure/config"
	mongodb "github.com/citysphere/citysphere-api/internal/infrastructure/db/mongo"
	"github.com/citysphere/citysphere-api/internal/infrastructure/db/postgres"
	redisdb "github.com/citysphere/citysphere-api/internal/infrastructure/db/redis"
	"github.com/citysphere/citysphere-api/internal/infrastructure/queue"
)

// Dependencies carries the connected backing stores and the AI provider into
// the router. Connections are established in main so their lifecycles stay
// owned by the process, not the router.
type Dependencies struct {
	Config   *config.Config
	Postgres *gorm.DB
	Mongo    *mongo.Database
	Redis    *redis.Client
	Provider ports.AIProvider
	Log      zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the label-job dispatcher, which the caller must Start.
func NewRouter(deps Dependencies) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("citysphere"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(deps.Postgres)
	locationRepo := postgres.NewLocationRepository(deps.Postgres)
	reviewRepo := postgres.NewReviewRepository(deps.Postgres)
	footpathRepo := postgres.NewFootpathRepository(deps.Postgres)
	filterRepo := postgres.NewFilterRepository(deps.Postgres)
	imageRepo := mongodb.NewImageMetaRepository(deps.Mongo)

	// --- Redis-backed collaborators ---
	answerCache := redisdb.NewAnswerCache(deps.Redis)
	deduper := redisdb.NewLabelDeduper(deps.Redis)

	// --- Services ---
	userService := service.NewUserService(userRepo, deps.Config.JWTSecret, deps.Config.TokenTTL, deps.Log)
	locationService := service.NewLocationService(locationRepo, deps.Log)
	reviewService := service.NewReviewService(reviewRepo, deps.Log)
	footpathService := service.NewFootpathService(footpathRepo, deps.Log)
	filterService := service.NewFilterService(filterRepo, deps.Log)
	aiService := service.NewAIService(deps.Provider, imageRepo, answerCache, deduper, deps.Log)
	statsService := service.NewStatsService(userRepo, locationRepo, reviewRepo, footpathRepo, imageRepo, deps.Log)

	// The dispatcher feeds label jobs back into the AI service; the image
	// service enqueues through it when uploads arrive unlabeled.
	dispatcher := queue.NewDispatcher(deps.Config.LabelWorkers, aiService, deps.Log)
	imageService := service.NewImageMetaService(imageRepo, dispatcher, deps.Log)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService)
	locationHandler := handler.NewLocationHandler(locationService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	footpathHandler := handler.NewFootpathHandler(footpathService)
	filterHandler := handler.NewFilterHandler(filterService)
	imageHandler := handler.NewImageMetaHandler(imageService)
	aiHandler := handler.NewAIHandler(aiService, dispatcher)
	statsHandler := handler.NewStatsHandler(statsService)

	authRequired := middleware.Auth(deps.Config.JWTSecret)
	adminOnly := middleware.RequireAdmin(userRepo)

	// --- Users ---
	users := e.Group("/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)
	users.POST("/logout", userHandler.Logout, authRequired)
	users.GET("/profile", userHandler.Profile, authRequired)
	users.PUT("/profile", userHandler.UpdateProfile, authRequired)
	users.DELETE("/profile", userHandler.DeleteAccount, authRequired)

	// --- Maps ---
	maps := e.Group("/maps", authRequired)
	maps.POST("/locations", locationHandler.Create)
	maps.GET("/locations", locationHandler.List)
	maps.GET("/locations/:id", locationHandler.Get)
	maps.PUT("/locations/:id", locationHandler.Update)
	maps.DELETE("/locations/:id", locationHandler.Delete)

	// --- Opinions ---
	opinions := e.Group("/opinions", authRequired)
	opinions.POST("/reviews", reviewHandler.Create)
	opinions.GET("/locations/:locationId/reviews", reviewHandler.ListByLocation)
	opinions.PUT("/reviews/:id", reviewHandler.Update)
	opinions.DELETE("/reviews/:id", reviewHandler.Delete)

	// --- Assessments ---
	assessments := e.Group("/assessments", authRequired)
	assessments.POST("/footpathAssessments", footpathHandler.Create)
	assessments.GET("/footpathAssessments/location/:locationId", footpathHandler.ListByLocation)
	assessments.PUT("/footpathAssessments/:id", footpathHandler.Update)
	assessments.DELETE("/footpathAssessments/:id", footpathHandler.Delete)

	// --- Categories ---
	categories := e.Group("/categories", authRequired)
	categories.POST("/filters", filterHandler.Create)
	categories.GET("/filters", filterHandler.List)
	categories.PUT("/filters/:id", filterHandler.Update)
	categories.DELETE("/filters/:id", filterHandler.Delete)

	// --- Images ---
	images := e.Group("/images", authRequired)
	images.POST("/image-metadata", imageHandler.Upload)
	images.GET("/image-metadata/:locationId", imageHandler.ListByLocation)
	images.PUT("/image-metadata/:id", imageHandler.Update)
	images.DELETE("/image-metadata/:id", imageHandler.Delete)

	// --- AI ---
	ai := e.Group("/ai", authRequired)
	ai.POST("/generate", aiHandler.Generate)
	ai.POST("/label", aiHandler.Label)
	ai.POST("/transcribe", aiHandler.Transcribe)

	// --- Admin ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/stats", statsHandler.Summary)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"postgres": handler.PingerFunc(func(ctx context.Context) error {
			sqlDB, err := deps.Postgres.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
		"mongo": handler.PingerFunc(func(ctx context.Context) error {
			return deps.Mongo.Client().Ping(ctx, nil)
		}),
		"redis": handler.PingerFunc(func(ctx context.Context) error {
			return deps.Redis.Ping(ctx).Err()
		}),
	})
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
