package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "certdesk/internal/application/auth/usecases"
	capacityServices "certdesk/internal/application/capacity/services"
	capacityUsecases "certdesk/internal/application/capacity/usecases"
	taskUsecases "certdesk/internal/application/task/usecases"
	"certdesk/internal/domain/capacity"
	"certdesk/internal/infrastructure/auth"
	"certdesk/internal/infrastructure/config"
	"certdesk/internal/infrastructure/ratelimit"
	"certdesk/internal/infrastructure/repository"
	authhandlers "certdesk/internal/interfaces/http/handlers/auth"
	capacityhandlers "certdesk/internal/interfaces/http/handlers/capacity"
	taskhandlers "certdesk/internal/interfaces/http/handlers/task"
	"certdesk/internal/interfaces/http/middleware"
	"certdesk/internal/interfaces/http/routes"
	"certdesk/internal/shared/authorization"
	"certdesk/internal/shared/db"
	"certdesk/internal/shared/logger"
	"certdesk/internal/shared/services/markdown"
	"certdesk/internal/shared/utils"
)

// Router wires repositories, services, use cases, and handlers together and
// registers the HTTP routes.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	log            logger.Interface
	redisClient    *redis.Client
	authHandler    *authhandlers.AuthHandler
	taskHandler    *taskhandlers.TaskHandler
	slotHandler    *capacityhandlers.SlotHandler
	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *middleware.RateLimiter
}

// jwtServiceAdapter bridges the infrastructure JWT service to the token
// interface the auth use cases define.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, role authorization.UserRole) (*authUsecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, role)
	if err != nil {
		return nil, err
	}
	return &authUsecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) VerifyRefresh(token string) (*authUsecases.TokenClaims, error) {
	claims, err := a.JWTService.VerifyRefresh(token)
	if err != nil {
		return nil, err
	}
	return &authUsecases.TokenClaims{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	regions, err := capacity.NewRegions(cfg.Capacity.Regions)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(database)
	requesterRepo := repository.NewRequesterRepository(database)
	certifierRepo := repository.NewCertifierRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	ledgerRepo := repository.NewSlotLedgerRepository(database)

	txManager := db.NewTransactionManager(database)
	markdownSvc := markdown.NewService()

	slotSvc := capacityServices.NewSlotService(
		ledgerRepo,
		regions,
		time.Duration(cfg.Capacity.IntervalMinutes)*time.Minute,
		log,
	)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{jwtSvc}

	registerUC := authUsecases.NewRegisterUseCase(userRepo, requesterRepo, hasher, regions, txManager, log)
	loginUC := authUsecases.NewLoginUseCase(userRepo, certifierRepo, hasher, jwtService, log)
	refreshUC := authUsecases.NewRefreshTokenUseCase(userRepo, jwtService, log)

	submitTaskUC := taskUsecases.NewSubmitTaskUseCase(taskRepo, requesterRepo, certifierRepo, slotSvc, txManager, log)
	getTaskUC := taskUsecases.NewGetTaskUseCase(taskRepo, requesterRepo, markdownSvc, log)
	listTasksUC := taskUsecases.NewListTasksUseCase(taskRepo, requesterRepo, slotSvc, regions, markdownSvc, log)
	updateTaskUC := taskUsecases.NewUpdateTaskUseCase(taskRepo, requesterRepo, slotSvc, txManager, markdownSvc, log)
	deleteTaskUC := taskUsecases.NewDeleteTaskUseCase(taskRepo, requesterRepo, log)
	completeTaskUC := taskUsecases.NewCompleteTaskUseCase(taskRepo, txManager, log)
	rejectTaskUC := taskUsecases.NewRejectTaskUseCase(taskRepo, requesterRepo, slotSvc, txManager, log)
	reactivateTaskUC := taskUsecases.NewReactivateTaskUseCase(taskRepo, requesterRepo, slotSvc, txManager, log)

	getSlotCountUC := capacityUsecases.NewGetSlotCountUseCase(slotSvc, txManager, log)
	incrementSlotsUC := capacityUsecases.NewIncrementSlotsUseCase(slotSvc, txManager, log)
	decrementSlotsUC := capacityUsecases.NewDecrementSlotsUseCase(slotSvc, txManager, log)

	authHandler := authhandlers.NewAuthHandler(registerUC, loginUC, refreshUC, log)
	taskHandler := taskhandlers.NewTaskHandler(
		submitTaskUC, getTaskUC, listTasksUC, updateTaskUC, deleteTaskUC,
		completeTaskUC, rejectTaskUC, reactivateTaskUC, log,
	)
	slotHandler := capacityhandlers.NewSlotHandler(getSlotCountUC, incrementSlotsUC, decrementSlotsUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	var redisClient *redis.Client
	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NoopRateLimiter{}
	}

	loginLimiter := middleware.NewRateLimiter(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
	}, "login", log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		log:            log,
		redisClient:    redisClient,
		authHandler:    authHandler,
		taskHandler:    taskHandler,
		slotHandler:    slotHandler,
		authMiddleware: authMiddleware,
		loginLimiter:   loginLimiter,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.loginLimiter,
	})

	routes.SetupTaskRoutes(r.engine, &routes.TaskRouteConfig{
		TaskHandler:    r.taskHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupSlotRoutes(r.engine, &routes.SlotRouteConfig{
		SlotHandler:    r.slotHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close releases resources held by the router.
func (r *Router) Close() error {
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}
