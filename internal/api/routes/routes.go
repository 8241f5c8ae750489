package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/book-reviews/internal/api/handlers"
	"github.com/princeprakhar/book-reviews/internal/api/middleware"
	"github.com/princeprakhar/book-reviews/internal/config"
	"github.com/princeprakhar/book-reviews/internal/repository"
	"github.com/princeprakhar/book-reviews/internal/services"
	"github.com/princeprakhar/book-reviews/internal/utils"
	"github.com/princeprakhar/book-reviews/pkg/logger"
)

// Dependencies are the collaborators the route handlers are built from.
type Dependencies struct {
	Reviews    repository.ReviewRepository
	Comments   repository.CommentRepository
	Credential utils.Credential
}

func SetupRoutes(router *gin.Engine, deps Dependencies, cfg *config.Config) {
	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))

	// Initialize services
	reviewService := services.NewReviewService(deps.Reviews, deps.Credential)
	commentService := services.NewCommentService(deps.Comments, deps.Reviews, deps.Credential,
		services.WithLegacyCompat(cfg.LegacyCompat))

	// Initialize handlers
	reviewHandler := handlers.NewReviewHandler(reviewService, cfg.LegacyCompat)
	commentHandler := handlers.NewCommentHandler(commentService, cfg.LegacyCompat)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	reviews := router.Group("/reviews")
	{
		reviews.POST("", reviewHandler.CreateReview)
		reviews.GET("", reviewHandler.ListReviews)
		reviews.GET("/:reviewId", reviewHandler.GetReview)
		reviews.PUT("/:reviewId", reviewHandler.UpdateReview)
		reviews.DELETE("/:reviewId", reviewHandler.DeleteReview)

		comments := reviews.Group("/:reviewId/comments")
		comments.POST("", commentHandler.CreateComment)
		comments.GET("", commentHandler.ListComments)
		comments.PUT("/:commentId", commentHandler.UpdateComment)
		comments.DELETE("/:commentId", commentHandler.DeleteComment)
	}

	logger.Info("Routes initialized successfully")
}
