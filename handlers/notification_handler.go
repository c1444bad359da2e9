package handlers

import (
	"github.com/ava1313/Portfolio-sub000/controllers"
	"github.com/ava1313/Portfolio-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(router *gin.RouterGroup, notificationController *controllers.NotificationController) {
	notificationGroup := router.Group("/notifications")
	{
		notificationGroup.GET("", middleware.AuthMiddleware(), notificationController.GetNotifications)
		notificationGroup.PATCH("/:id/read", middleware.AuthMiddleware(), notificationController.MarkNotificationRead)
	}
}
