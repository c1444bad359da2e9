package controllers

import (
	"net/http"

	"github.com/ava1313/Portfolio-sub000/services"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService *services.ReviewService
}

func NewReviewController() *ReviewController {
	return &ReviewController{
		ReviewService: services.NewReviewService(),
	}
}

func (r *ReviewController) GetReviews(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reviews, summary, err := r.ReviewService.GetReviews(c, businessID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reviews fetched successfully", gin.H{
		"reviews": reviews,
		"summary": summary,
	})
}

func (r *ReviewController) SubmitReview(c *gin.Context) {
	actor := actorFromContext(c)
	if actor == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	businessID := c.Param("id")

	var requestBody struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format or missing rating")
		return
	}

	review, err := r.ReviewService.SubmitReview(c, actor, businessID, requestBody.Rating, requestBody.Comment)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Review submitted successfully", review)
}
