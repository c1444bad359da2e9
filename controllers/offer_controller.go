package controllers

import (
	"net/http"

	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/services"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OfferController struct {
	OfferService *services.OfferService
}

func NewOfferController() *OfferController {
	return &OfferController{
		OfferService: services.NewOfferService(),
	}
}

func (o *OfferController) GetOffers(c *gin.Context) {
	offers, err := o.OfferService.GetOffers(c, c.Query("businessId"))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Offers fetched successfully", offers)
}

func (o *OfferController) CreateOffer(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var requestBody struct {
		BusinessID  string `json:"businessId" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	offer := &models.Offer{
		BusinessID:  requestBody.BusinessID,
		Title:       requestBody.Title,
		Description: requestBody.Description,
		ImageURL:    requestBody.ImageURL,
	}

	saved, err := o.OfferService.CreateOffer(c, userID.(string), offer)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Offer created successfully", saved)
}

func (o *OfferController) DeleteOffer(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	offerID := c.Param("id")
	if offerID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := o.OfferService.DeleteOffer(c, userID.(string), offerID); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Offer deleted successfully", nil)
}
