package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	contentHTTP "grace-media/internal/controller/http"
	"grace-media/internal/repo/persistent"
	"grace-media/internal/usecase"
	"grace-media/pkg/cache"
	"grace-media/pkg/config"
	"grace-media/pkg/jwt"
	"grace-media/pkg/logger"
	"grace-media/pkg/middleware"
	"grace-media/pkg/queue"
	"grace-media/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "grace-media/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, store *storage.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	listCache := cache.NewListCache(redisClient, time.Duration(cfg.ListCacheTTLSeconds)*time.Second, log)

	// Initialize repositories
	sermonRepo := persistent.NewSermonRepository(db)
	docRepo := persistent.NewDocumentaryRepository(db)
	presentationRepo := persistent.NewPresentationRepository(db)
	materialRepo := persistent.NewMaterialRepository(db)
	communityRepo := persistent.NewCommunityRepository(db)
	userRepo := persistent.NewUserRepository(db)

	// Initialize use cases
	var events usecase.EventPublisher
	if queueClient != nil {
		events = queueClient
	}
	sermonUseCase := usecase.NewSermonUseCase(sermonRepo, store, listCache, events, log)
	docUseCase := usecase.NewDocumentaryUseCase(docRepo, store, listCache, events, log)
	presentationUseCase := usecase.NewPresentationUseCase(presentationRepo, store, listCache, events, log)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo, store, listCache, events, log)
	communityUseCase := usecase.NewCommunityUseCase(communityRepo, userRepo, store, listCache, events, log)
	userUseCase := usecase.NewUserUseCase(userRepo, store, listCache, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService)

	// Initialize HTTP handlers
	sermonHandler := contentHTTP.NewSermonHandler(sermonUseCase, log)
	docHandler := contentHTTP.NewDocumentaryHandler(docUseCase, log)
	presentationHandler := contentHTTP.NewPresentationHandler(presentationUseCase, log)
	materialHandler := contentHTTP.NewMaterialHandler(materialUseCase, log)
	communityHandler := contentHTTP.NewCommunityHandler(communityUseCase, log)
	userHandler := contentHTTP.NewUserHandler(userUseCase, log)
	authHandler := contentHTTP.NewAuthHandler(authUseCase, log)
	mediaHandler := contentHTTP.NewMediaHandler(store, log)

	// Setup router
	r := gin.Default()

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

	r.POST("/api/v1/auth/login", authHandler.Login)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	editors := middleware.RequireRole("admin", "editor")
	moderators := middleware.RequireRole("admin", "moderator")
	admins := middleware.RequireRole("admin")

	{
		api.GET("/sermons", sermonHandler.ListSermons)
		api.GET("/sermons/:id", sermonHandler.GetSermon)
		api.POST("/sermons", editors, sermonHandler.CreateSermon)
		api.PUT("/sermons/:id", editors, sermonHandler.UpdateSermon)
		api.DELETE("/sermons/:id", editors, sermonHandler.DeleteSermon)
		api.POST("/sermons/bulk-delete", editors, sermonHandler.BulkDeleteSermons)
		api.POST("/sermons/bulk-status", editors, sermonHandler.BulkUpdateSermonStatus)

		api.GET("/documentaries", docHandler.ListDocumentaries)
		api.GET("/documentaries/:id", docHandler.GetDocumentary)
		api.POST("/documentaries", editors, docHandler.CreateDocumentary)
		api.PUT("/documentaries/:id", editors, docHandler.UpdateDocumentary)
		api.DELETE("/documentaries/:id", editors, docHandler.DeleteDocumentary)
		api.POST("/documentaries/bulk-delete", editors, docHandler.BulkDeleteDocumentaries)

		api.GET("/presentations", presentationHandler.ListPresentations)
		api.GET("/presentations/:id", presentationHandler.GetPresentation)
		api.POST("/presentations", editors, presentationHandler.CreatePresentation)
		api.PUT("/presentations/:id", editors, presentationHandler.UpdatePresentation)
		api.DELETE("/presentations/:id", editors, presentationHandler.DeletePresentation)
		api.POST("/presentations/bulk-delete", editors, presentationHandler.BulkDeletePresentations)

		api.GET("/materials", materialHandler.ListMaterials)
		api.GET("/materials/:id", materialHandler.GetMaterial)
		api.POST("/materials", editors, materialHandler.CreateMaterial)
		api.PUT("/materials/:id", editors, materialHandler.UpdateMaterial)
		api.DELETE("/materials/:id", editors, materialHandler.DeleteMaterial)
		api.POST("/materials/bulk-delete", editors, materialHandler.BulkDeleteMaterials)

		api.GET("/community/posts", communityHandler.ListPosts)
		api.GET("/community/posts/:id", communityHandler.GetPost)
		api.POST("/community/posts", communityHandler.CreatePost)
		api.PATCH("/community/posts/:id/status", moderators, communityHandler.UpdatePostStatus)
		api.DELETE("/community/posts/:id", moderators, communityHandler.DeletePost)
		api.POST("/community/posts/bulk-delete", moderators, communityHandler.BulkDeletePosts)

		api.GET("/community/groups", communityHandler.ListGroups)
		api.GET("/community/groups/:id", communityHandler.GetGroup)
		api.POST("/community/groups", moderators, communityHandler.CreateGroup)
		api.PUT("/community/groups/:id", moderators, communityHandler.UpdateGroup)
		api.DELETE("/community/groups/:id", moderators, communityHandler.DeleteGroup)

		api.GET("/users", admins, userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.POST("/users", admins, userHandler.CreateUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", admins, userHandler.DeleteUser)

		api.GET("/media/:bucket", editors, mediaHandler.ListMedia)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Content service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down content service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Content service stopped")
}
