package handlers

import (
	"github.com/ava1313/Portfolio-sub000/controllers"
	"github.com/ava1313/Portfolio-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterReviewRoutes(router *gin.RouterGroup, reviewController *controllers.ReviewController) {
	reviewGroup := router.Group("/businesses/:id/reviews")
	{
		reviewGroup.GET("", reviewController.GetReviews)
		reviewGroup.POST("", middleware.AuthMiddleware(), reviewController.SubmitReview)
	}
}
