package route

import (
	"github.com/ava1313/Portfolio-sub000/controllers"
	"github.com/ava1313/Portfolio-sub000/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController()
	businessController := controllers.NewBusinessController()
	reviewController := controllers.NewReviewController()
	favoriteController := controllers.NewFavoriteController()
	eventController := controllers.NewEventController()
	offerController := controllers.NewOfferController()
	notificationController := controllers.NewNotificationController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authController)
		handlers.RegisterUserRoutes(v1Routes, userController)
		handlers.RegisterBusinessRoutes(v1Routes, businessController)
		handlers.RegisterReviewRoutes(v1Routes, reviewController)
		handlers.RegisterFavoriteRoutes(v1Routes, favoriteController)
		handlers.RegisterEventRoutes(v1Routes, eventController)
		handlers.RegisterOfferRoutes(v1Routes, offerController)
		handlers.RegisterNotificationRoutes(v1Routes, notificationController)
	}
}
