package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/admin/usecases"
	shippingusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/shipping/usecases"
	ticketusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/ticket/usecases"
	userusecases "github.com/Hardik-Dharmik/shipping-b/internal/application/user/usecases"
	infraauth "github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/auth"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/config"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/ratelimit"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/repository"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/storage"
	"github.com/Hardik-Dharmik/shipping-b/internal/interfaces/http/handlers"
	"github.com/Hardik-Dharmik/shipping-b/internal/interfaces/http/middleware"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/utils"
)

// Router wires repositories, use cases, handlers and middleware into a gin
// engine.
type Router struct {
	engine          *gin.Engine
	registerHandler *handlers.RegisterHandler
	authHandler     *handlers.AuthHandler
	adminHandler    *handlers.AdminHandler
	ticketHandler   *handlers.TicketHandler
	shippingHandler *handlers.ShippingHandler
	authMiddleware  *middleware.AuthMiddleware
	adminMiddleware *middleware.AdminMiddleware
	rateLimiter     ratelimit.RateLimiter
	cfg             *config.Config
	logger          logger.Interface
}

// NewRouter builds the full dependency graph. redisClient may be nil, in
// which case rate limiting is disabled.
func NewRouter(db *gorm.DB, storageClient storage.Client, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	orderRepo := repository.NewOrderRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := infraauth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpHours)

	signupStore := storage.NewSignupStore(storageClient, cfg.Storage.SignupBucket)
	ticketStore := storage.NewTicketStore(storageClient, cfg.Storage.TicketBucket)

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, signupStore, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getCurrentUserUC := userusecases.NewGetCurrentUserUseCase(userRepo, log)

	listUsersUC := adminusecases.NewListUsersUseCase(userRepo, log)
	getUserUC := adminusecases.NewGetUserUseCase(userRepo, log)
	changeApprovalUC := adminusecases.NewChangeApprovalUseCase(userRepo, log)
	bulkChangeApprovalUC := adminusecases.NewBulkChangeApprovalUseCase(userRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, orderRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	readMessagesUC := ticketusecases.NewReadMessagesUseCase(ticketRepo, log)
	postMessageUC := ticketusecases.NewPostMessageUseCase(ticketRepo, ticketStore, log)

	quoteUC := shippingusecases.NewQuoteUseCase(cfg.Shipping.Currency, nil, nil, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)
	adminMiddleware := middleware.NewAdminMiddleware(authMiddleware, cfg.Auth.AdminToken, log)

	var rateLimiter ratelimit.RateLimiter
	if redisClient != nil {
		rateLimiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine:          engine,
		registerHandler: handlers.NewRegisterHandler(registerUC, log),
		authHandler:     handlers.NewAuthHandler(loginUC, getCurrentUserUC, log),
		adminHandler:    handlers.NewAdminHandler(listUsersUC, getUserUC, changeApprovalUC, bulkChangeApprovalUC, log),
		ticketHandler:   handlers.NewTicketHandler(createTicketUC, listTicketsUC, readMessagesUC, postMessageUC, log),
		shippingHandler: handlers.NewShippingHandler(quoteUC, log),
		authMiddleware:  authMiddleware,
		adminMiddleware: adminMiddleware,
		rateLimiter:     rateLimiter,
		cfg:             cfg,
		logger:          log,
	}
}

// Setup registers global middleware and all routes.
func (r *Router) Setup() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.CORS.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.engine.Group("/api")

	registerGroup := api.Group("")
	if r.rateLimiter != nil {
		registerGroup.Use(middleware.RateLimit(r.rateLimiter, "register", ratelimit.Config{
			RequestsPerMinute: 5,
			RequestsPerHour:   30,
		}, r.logger))
	}
	registerGroup.POST("/register", r.registerHandler.Register)

	authGroup := api.Group("/auth")
	{
		loginGroup := authGroup.Group("")
		if r.rateLimiter != nil {
			loginGroup.Use(middleware.RateLimit(r.rateLimiter, "login", ratelimit.Config{
				RequestsPerMinute: 10,
				RequestsPerHour:   100,
			}, r.logger))
		}
		loginGroup.POST("/login", r.authHandler.Login)

		authGroup.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		authGroup.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		authGroup.POST("/verify-token", r.authMiddleware.RequireAuth(), r.authHandler.VerifyToken)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.adminMiddleware.RequireAdmin())
	{
		adminGroup.GET("/pending", r.adminHandler.ListPending)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.POST("/approve/bulk", r.adminHandler.BulkApprove)
		adminGroup.POST("/reject/bulk", r.adminHandler.BulkReject)
		adminGroup.PATCH("/approve/:id", r.adminHandler.Approve)
		adminGroup.PATCH("/reject/:id", r.adminHandler.Reject)
	}

	ticketGroup := api.Group("/tickets")
	{
		ticketGroup.GET("/all", r.adminMiddleware.RequireAdmin(), r.ticketHandler.ListAllTickets)

		authed := ticketGroup.Group("")
		authed.Use(r.authMiddleware.RequireAuth())
		{
			authed.POST("/create", r.ticketHandler.CreateTicket)
			authed.GET("/my-tickets", r.ticketHandler.ListTickets)
			authed.GET("/:id/messages", r.ticketHandler.GetMessages)
			authed.POST("/:id/messages", r.ticketHandler.PostMessage)
		}
	}

	shippingGroup := api.Group("/shipping")
	shippingGroup.Use(r.authMiddleware.RequireAuth())
	shippingGroup.POST("/quote", r.shippingHandler.Quote)
}

// Engine exposes the configured gin engine to the server command.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
