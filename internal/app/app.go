package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	libraryHTTP "openshelf/internal/controller/http"
	"openshelf/internal/repo/persistent"
	"openshelf/internal/usecase"
	"openshelf/pkg/config"
	"openshelf/pkg/jwt"
	"openshelf/pkg/logger"
	"openshelf/pkg/middleware"
	"openshelf/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "openshelf/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize Repositories
	userRepo := persistent.NewUserRepository(db)
	workRepo := persistent.NewWorkRepository(db)
	borrowRepo := persistent.NewBorrowRepository(db)
	favoriteRepo := persistent.NewFavoriteRepository(db)
	requestRepo := persistent.NewLibrarianRequestRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	downloadRepo := persistent.NewDownloadRepository(db)
	notificationRepo := persistent.NewNotificationRepository(db)

	// Initialize UseCases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	workUseCase := usecase.NewWorkUseCase(workRepo, userRepo, redisClient, log)
	moderationUseCase := usecase.NewModerationUseCase(workUseCase, userRepo, queueClient, log)
	borrowUseCase := usecase.NewBorrowUseCase(borrowRepo, workRepo, userRepo, cfg.BorrowDurationDays, cfg.ExtensionDays, log)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, workRepo, log)
	requestUseCase := usecase.NewRequestUseCase(requestRepo, userRepo, queueClient, log)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, userRepo)
	downloadUseCase := usecase.NewDownloadUseCase(downloadRepo, workRepo, log)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, queueClient, log)
	statsUseCase := usecase.NewStatsUseCase(workRepo, userRepo, borrowRepo, downloadRepo, redisClient, log)

	// Initialize HTTP handlers
	authHandler := libraryHTTP.NewAuthHandler(authUseCase, log)
	workHandler := libraryHTTP.NewWorkHandler(workUseCase, moderationUseCase, log)
	borrowHandler := libraryHTTP.NewBorrowHandler(borrowUseCase, log)
	favoriteHandler := libraryHTTP.NewFavoriteHandler(favoriteUseCase, log)
	requestHandler := libraryHTTP.NewRequestHandler(requestUseCase, log)
	categoryHandler := libraryHTTP.NewCategoryHandler(categoryUseCase, log)
	downloadHandler := libraryHTTP.NewDownloadHandler(downloadUseCase, log)
	notificationHandler := libraryHTTP.NewNotificationHandler(notificationUseCase, log)
	statsHandler := libraryHTTP.NewStatsHandler(statsUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute)) // 100 requests per minute

	// Public routes
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/works", workHandler.ListWorks)
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/stats", statsHandler.GetStats)
	}

	// Optional-auth routes: a token personalizes the response but is not required
	optional := api.Group("")
	optional.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		optional.GET("/works/:id", workHandler.GetWork)
		optional.POST("/downloads", downloadHandler.CreateDownload)
	}

	// Protected routes - require authentication
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.PUT("/auth/me", authHandler.UpdateProfile)

		protected.POST("/works", workHandler.SubmitWork)
		protected.GET("/works/mine", workHandler.MyWorks)
		protected.PUT("/works/:id", workHandler.UpdateWork)

		protected.GET("/moderation/queue", workHandler.ModerationQueue)
		protected.POST("/moderation/works/:id/approve", workHandler.ApproveWork)
		protected.POST("/moderation/works/:id/reject", workHandler.RejectWork)

		protected.POST("/borrows", borrowHandler.CreateBorrow)
		protected.GET("/borrows", borrowHandler.ListBorrows)
		protected.POST("/borrows/:id/extend", borrowHandler.ExtendBorrow)
		protected.POST("/borrows/:id/return", borrowHandler.ReturnBorrow)

		protected.GET("/works/:id/favorite", favoriteHandler.IsFavorite)
		protected.POST("/works/:id/favorite", favoriteHandler.ToggleFavorite)
		protected.DELETE("/works/:id/favorite", favoriteHandler.RemoveFavorite)
		protected.GET("/favorites", favoriteHandler.ListFavorites)

		protected.POST("/librarian-requests", requestHandler.CreateRequest)
		protected.GET("/librarian-requests", requestHandler.ListRequests)
		protected.GET("/librarian-requests/mine", requestHandler.MyRequest)
		protected.DELETE("/librarian-requests/:id", requestHandler.CancelRequest)
		protected.POST("/librarian-requests/:id/approve", requestHandler.ApproveRequest)
		protected.POST("/librarian-requests/:id/reject", requestHandler.RejectRequest)

		protected.POST("/categories", categoryHandler.CreateCategory)

		protected.GET("/downloads", downloadHandler.ListDownloads)

		protected.GET("/notifications", notificationHandler.ListNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.GET("/notifications/queue-status", notificationHandler.QueueStatus)
		protected.POST("/notifications/:id/read", notificationHandler.MarkNotificationRead)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start consuming notification tasks in a goroutine
	go func() {
		log.Info("Starting notification queue processor...")
		err := queueClient.ConsumeNotificationTasks(func(task map[string]interface{}) error {
			return notificationUseCase.HandleTask(task)
		})
		if err != nil {
			log.Error("Notification queue consumer stopped: %v", err)
		}
	}()

	// Start server in a goroutine
	go func() {
		log.Info("OpenShelf starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down OpenShelf...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	// Close RabbitMQ connection
	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("OpenShelf exited")
}
