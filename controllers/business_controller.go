package controllers

import (
	"net/http"
	"strconv"

	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/services"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	BusinessService *services.BusinessService
	ReviewService   *services.ReviewService
	ImportService   *services.ImportService
	StorageService  *services.StorageService
}

func NewBusinessController() *BusinessController {
	return &BusinessController{
		BusinessService: services.NewBusinessService(),
		ReviewService:   services.NewReviewService(),
		ImportService:   services.NewImportService(),
		StorageService:  services.NewStorageService(),
	}
}

// SearchBusinesses handles the directory screen: free-text category,
// location and type filters
func (b *BusinessController) SearchBusinesses(c *gin.Context) {
	query := models.BusinessQuery{
		Category:     c.Query("category"),
		Location:     c.Query("location"),
		BusinessType: c.Query("type"),
	}
	if c.Query("locationMatch") == "exact" {
		query.LocationPolicy = models.LocationTokenExact
	}

	businesses, err := b.BusinessService.SearchBusinesses(c, query)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Businesses fetched successfully", businesses)
}

func (b *BusinessController) GetNearbyBusinesses(c *gin.Context) {
	latitudeStr := c.Query("latitude")
	longitudeStr := c.Query("longitude")

	latitude, err := strconv.ParseFloat(latitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
		return
	}

	longitude, err := strconv.ParseFloat(longitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	userID := ""
	if actor := actorFromContext(c); actor != nil {
		userID = actor.ID
	}

	businesses, err := b.BusinessService.GetNearbyBusinesses(c, latitude, longitude, userID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Businesses fetched successfully", businesses)
}

func (b *BusinessController) GetBusinessByID(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	business, err := b.BusinessService.GetBusinessByID(c, businessID)
	if err != nil {
		c.Error(err)
		return
	}

	_, summary, err := b.ReviewService.GetReviews(c, businessID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Business fetched successfully", gin.H{
		"business": business,
		"reviews":  summary,
	})
}

func (b *BusinessController) CreateBusiness(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var business models.BusinessProfile
	if err := c.ShouldBindJSON(&business); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	business.OwnerID = userID.(string)

	saved, err := b.BusinessService.CreateBusiness(c, &business)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Business created successfully", saved)
}

func (b *BusinessController) UpdateBusiness(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	businessID := c.Param("id")
	var business models.BusinessProfile
	if err := c.ShouldBindJSON(&business); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := b.BusinessService.UpdateBusiness(c, businessID, userID.(string), &business)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Business updated successfully", updated)
}

// ImportBusiness prefills an onboarding draft from the business's website
func (b *BusinessController) ImportBusiness(c *gin.Context) {
	var requestBody struct {
		URL string `json:"url" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or missing url")
		return
	}

	draft, err := b.ImportService.ImportFromWebsite(c, requestBody.URL)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Website imported successfully", draft)
}

// UploadPhoto stores a gallery image and appends its URL to the listing
func (b *BusinessController) UploadPhoto(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	businessID := c.Param("id")
	business, err := b.BusinessService.GetBusinessByID(c, businessID)
	if err != nil {
		c.Error(err)
		return
	}
	if business.OwnerID != userID.(string) {
		utils.ErrorResponse(c, http.StatusForbidden, "Only the owner can upload photos")
		return
	}
	if len(business.PhotoURLs) >= models.MaxBusinessPhotos {
		utils.ErrorResponse(c, http.StatusBadRequest, "A listing can hold at most 10 photos")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Photo file is required")
		return
	}

	photoURL, err := b.StorageService.UploadBusinessPhoto(c, businessID, fileHeader)
	if err != nil {
		c.Error(err)
		return
	}

	business.PhotoURLs = append(business.PhotoURLs, photoURL)
	updated, err := b.BusinessService.UpdateBusiness(c, businessID, userID.(string), business)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Photo uploaded successfully", updated)
}
