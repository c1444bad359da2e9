package handlers

import (
	"github.com/ava1313/Portfolio-sub000/controllers"
	"github.com/ava1313/Portfolio-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterEventRoutes(router *gin.RouterGroup, eventController *controllers.EventController) {
	eventGroup := router.Group("/events")
	{
		eventGroup.GET("", middleware.OptionalAuthMiddleware(), eventController.GetEvents)
		eventGroup.POST("", middleware.AuthMiddleware(), eventController.CreateEvent)
		eventGroup.DELETE("/:id", middleware.AuthMiddleware(), eventController.DeleteEvent)
		eventGroup.POST("/:id/attend", middleware.AuthMiddleware(), eventController.ToggleAttendance)
	}
}
