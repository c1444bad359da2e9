package handlers

import (
	"github.com/ava1313/Portfolio-sub000/controllers"
	"github.com/ava1313/Portfolio-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterOfferRoutes(router *gin.RouterGroup, offerController *controllers.OfferController) {
	offerGroup := router.Group("/offers")
	{
		offerGroup.GET("", offerController.GetOffers)
		offerGroup.POST("", middleware.AuthMiddleware(), offerController.CreateOffer)
		offerGroup.DELETE("/:id", middleware.AuthMiddleware(), offerController.DeleteOffer)
	}
}
