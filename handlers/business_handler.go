package handlers

import (
	"github.com/ava1313/Portfolio-sub000/controllers"
	"github.com/ava1313/Portfolio-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterBusinessRoutes(router *gin.RouterGroup, businessController *controllers.BusinessController) {
	businessGroup := router.Group("/businesses")
	{
		businessGroup.GET("", businessController.SearchBusinesses)
		businessGroup.GET("/nearby", middleware.OptionalAuthMiddleware(), businessController.GetNearbyBusinesses)
		businessGroup.GET("/:id", businessController.GetBusinessByID)
		businessGroup.POST("", middleware.AuthMiddleware(), businessController.CreateBusiness)
		businessGroup.PUT("/:id", middleware.AuthMiddleware(), businessController.UpdateBusiness)
		businessGroup.POST("/import", middleware.AuthMiddleware(), businessController.ImportBusiness)
		businessGroup.POST("/:id/photos", middleware.AuthMiddleware(), businessController.UploadPhoto)
	}
}
