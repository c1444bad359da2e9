package handlers

import (
	"github.com/ava1313/Portfolio-sub000/controllers"
	"github.com/ava1313/Portfolio-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFavoriteRoutes(router *gin.RouterGroup, favoriteController *controllers.FavoriteController) {
	router.POST("/businesses/:id/favorite", middleware.AuthMiddleware(), favoriteController.ToggleFavorite)
	router.GET("/favorites", middleware.AuthMiddleware(), favoriteController.GetFavorites)
}
