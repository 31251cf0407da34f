package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"athos-learning-service/internal/adaptive"
	"athos-learning-service/internal/cache"
	"athos-learning-service/internal/config"
	"athos-learning-service/internal/db"
	"athos-learning-service/internal/event"
	"athos-learning-service/internal/handlers"
	"athos-learning-service/internal/repository"
	"athos-learning-service/internal/service"
	"athos-learning-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoDB.URI)
	defer db.Disconnect()

	database := db.Client.Database(cfg.MongoDB.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Printf("Warning: failed to create database indexes: %v", err)
	}
	cancel()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, learning events will not be published")
	}

	// Redis reference cache
	var refCache *cache.Cache
	if cfg.Redis.Address != "" {
		var err error
		refCache, err = cache.NewCache(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			log.Printf("Redis not reachable, serving reference data uncached: %v", err)
			refCache = nil
		} else {
			defer refCache.Close()
		}
	}

	// Consul registration
	if cfg.Consul.Address != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Printf("Consul client init failed: %v", err)
		} else if err := registry.Register(); err != nil {
			log.Printf("Consul registration failed: %v", err)
		} else {
			defer registry.Deregister()
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.Server.ServiceName})
	})

	// Repositories, services, handlers
	engine := adaptive.NewEngine(nil)

	contentRepo := repository.NewContentRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	userRepo := repository.NewUserRepository(database)
	progressRepo := repository.NewProgressRepository(database)

	contentService := service.NewContentService(contentRepo, refCache)
	quizService := service.NewQuizService(quizRepo, refCache)
	progressService := service.NewProgressService(progressRepo, contentRepo, quizRepo, quizService, engine)
	recommendationService := service.NewRecommendationService(userRepo, progressRepo, contentService, quizService, engine)

	contentHandler := handlers.NewContentHandler(contentService)
	quizHandler := handlers.NewQuizHandler(quizService, progressService)
	progressHandler := handlers.NewProgressHandler(progressService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	// Public routes - reference data, sanitized
	publicContent := r.Group("/public/learning/content")
	{
		publicContent.GET("/module/:moduleId", func(c *gin.Context) {
			contentHandler.ListByModule(c)
			if publisher != nil {
				publisher.Publish("learning.content.listed", gin.H{"module_id": c.Param("moduleId")})
			}
		})
		publicContent.GET("/:id", func(c *gin.Context) {
			contentHandler.Get(c)
			if publisher != nil {
				publisher.Publish("learning.content.viewed", gin.H{"id": c.Param("id")})
			}
		})
	}

	publicQuiz := r.Group("/public/learning/quiz")
	{
		publicQuiz.GET("/module/:moduleId", func(c *gin.Context) {
			quizHandler.ListByModule(c)
			if publisher != nil {
				publisher.Publish("learning.quiz.listed", gin.H{"module_id": c.Param("moduleId")})
			}
		})
		publicQuiz.GET("/:id", func(c *gin.Context) {
			quizHandler.Get(c)
			if publisher != nil {
				publisher.Publish("learning.quiz.viewed", gin.H{"id": c.Param("id")})
			}
		})
	}

	setupProtectedRoutes(r, contentHandler, quizHandler, progressHandler, recommendationHandler, publisher)

	r.Run(":" + cfg.Server.Port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	contentHandler *handlers.ContentHandler,
	quizHandler *handlers.QuizHandler,
	progressHandler *handlers.ProgressHandler,
	recommendationHandler *handlers.RecommendationHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/learning")

	// The gateway verifies the JWT and installs X-User-ID; anything that
	// reaches these routes without it is rejected.
	protected.Use(func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	// === ADAPTIVE LEARNING ===

	adaptiveGroup := protected.Group("/adaptive")
	{
		adaptiveGroup.GET("/recommendations", func(c *gin.Context) {
			recommendationHandler.GetRecommendations(c)
			if publisher != nil {
				publisher.Publish("learning.recommendations.requested", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		adaptiveGroup.GET("/content/:moduleId", func(c *gin.Context) {
			recommendationHandler.GetAdaptiveContent(c)
			if publisher != nil {
				publisher.Publish("learning.adaptive.content_requested", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"module_id": c.Param("moduleId"),
					"timestamp": time.Now(),
				})
			}
		})

		adaptiveGroup.GET("/quizzes/:moduleId", func(c *gin.Context) {
			recommendationHandler.GetAdaptiveQuizzes(c)
			if publisher != nil {
				publisher.Publish("learning.adaptive.quizzes_requested", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"module_id": c.Param("moduleId"),
					"timestamp": time.Now(),
				})
			}
		})

		adaptiveGroup.POST("/track-behavior", func(c *gin.Context) {
			progressHandler.TrackBehavior(c)
			if publisher != nil {
				publisher.Publish("learning.behavior.tracked", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// === PROGRESS ===

	progressGroup := protected.Group("/progress")
	{
		progressGroup.GET("", progressHandler.GetProgress)
		progressGroup.POST("/content", func(c *gin.Context) {
			progressHandler.ReportContentProgress(c)
			if publisher != nil {
				publisher.Publish("learning.progress.content_reported", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// === QUIZ SUBMISSION ===

	protected.POST("/quiz/:id/submit", func(c *gin.Context) {
		quizHandler.Submit(c)
		if publisher != nil {
			publisher.Publish("learning.quiz.submitted", gin.H{
				"quiz_id":   c.Param("id"),
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		}
	})

	// === REFERENCE-DATA ADMINISTRATION ===

	adminContent := protected.Group("/content")
	{
		adminContent.POST("/", contentHandler.Create)
		adminContent.PUT("/:id", contentHandler.Update)
		adminContent.DELETE("/:id", contentHandler.Delete)
	}

	adminQuiz := protected.Group("/quiz")
	{
		adminQuiz.POST("/", quizHandler.Create)
		adminQuiz.PUT("/:id", quizHandler.Update)
		adminQuiz.DELETE("/:id", quizHandler.Delete)
	}
}
