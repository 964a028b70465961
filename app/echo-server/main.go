package main

import (
	"context"
	"fmt"
	"log"
	"myCardVault/app/echo-server/router"
	"myCardVault/business/cards"
	"myCardVault/business/chat"
	"myCardVault/business/featured"
	"myCardVault/business/orders"
	"myCardVault/business/recommend"
	"myCardVault/business/returns"
	"myCardVault/business/sets"
	userService "myCardVault/business/user"
	"myCardVault/internal/middleware"
	"myCardVault/internal/repository/completion"
	"myCardVault/internal/repository/notification"
	psqlRepo "myCardVault/internal/repository/postgres"
	redisRepo "myCardVault/internal/repository/redis"
	"myCardVault/internal/rest"
	"myCardVault/pkg/config"
	"myCardVault/pkg/database"
	redisdb "myCardVault/pkg/database/redis"
	"myCardVault/pkg/logger"
	"myCardVault/pkg/metrics"
	"myCardVault/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting CardVault", "version", cfg.App.Version)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis is used for the session token store. The API still works
	// without it, with plain JWT auth.
	var tokenRepo *redisRepo.TokenRepository
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, session revocation disabled", err)
	} else {
		tokenRepo = redisRepo.NewTokenRepository(redisClient)
		defer redisdb.CloseRedisClient(redisClient)
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	completionRepo := completion.NewCompletionRepository(
		completion.CompletionConfig{
			BaseUrl: cfg.Completion.BaseUrl,
			APIKey:  cfg.Completion.APIKey,
			Model:   cfg.Completion.Model,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	cardRepo := psqlRepo.NewCardRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	returnsRepo := psqlRepo.NewReturnsRepository(db)
	setRepo := psqlRepo.NewCardSetRepository(db)
	featuredRepo := psqlRepo.NewFeaturedRepository(db)
	recommendCfgRepo := psqlRepo.NewRecommendConfigRepository(db)
	eventRepo := psqlRepo.NewRecommendationEventRepository(db)

	// Init service
	usersService := userService.NewUserService(userRepo, validate, mailjetEmail, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	cardService := cards.NewCardService(cardRepo)
	orderService := orders.NewOrderService(ordersRepo, cardRepo)
	returnService := returns.NewReturnService(returnsRepo, ordersRepo)
	setService := sets.NewSetService(setRepo)
	featuredService := featured.NewFeaturedService(featuredRepo, cardRepo)
	recommendService := recommend.NewService(cardRepo, ordersRepo, userRepo, recommendCfgRepo, eventRepo, completionRepo, recommend.DefaultConfig())
	chatService := chat.NewService(cardRepo, completionRepo)

	// Init handler
	var tokenStore rest.TokenStore
	if tokenRepo != nil {
		tokenStore = tokenRepo
	}
	userHandler := rest.NewUserHandler(usersService, tokenStore)
	cardHandler := rest.NewCardHandler(cardService)
	ordersHandler := rest.NewOrdersHandler(orderService)
	returnHandler := rest.NewReturnHandler(returnService)
	setHandler := rest.NewSetHandler(setService)
	featuredHandler := rest.NewFeaturedHandler(featuredService)
	recommendHandler := rest.NewRecommendHandler(recommendService)
	recommendAdminHandler := rest.NewRecommendAdminHandler(recommendCfgRepo)
	chatHandler := rest.NewChatHandler(chatService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	if tokenRepo != nil {
		authRequired = middleware.AuthMiddlewareWithRedis(tokenRepo)
	}
	adminOnly := middleware.AdminOnly()
	selfOrAdmin := middleware.SelfOrAdmin()

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupCardRoutes(api, cardHandler, authRequired, adminOnly)
	router.SetupSetRoutes(api, setHandler, authRequired, adminOnly)
	router.SetOrdersRoutes(api, ordersHandler, authRequired)
	router.SetReturnsRoutes(api, returnHandler, authRequired, adminOnly)
	router.SetFeaturedRoutes(api, featuredHandler, authRequired, adminOnly)
	router.SetRecommendRoutes(api, recommendHandler, authRequired, adminOnly)
	router.SetRecommendAdminRoutes(api, recommendAdminHandler, authRequired, adminOnly)
	router.SetChatRoutes(api, chatHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
