package controllers

import (
	"net/http"

	"github.com/ava1313/Portfolio-sub000/services"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	FavoriteService *services.FavoriteService
}

func NewFavoriteController() *FavoriteController {
	return &FavoriteController{
		FavoriteService: services.NewFavoriteService(),
	}
}

// ToggleFavorite flips the business in the caller's favorites set
func (f *FavoriteController) ToggleFavorite(c *gin.Context) {
	actor := actorFromContext(c)
	if actor == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	businessID := c.Param("id")
	if businessID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := f.FavoriteService.ToggleFavorite(c, actor, businessID)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Business removed from favorites"
	if result.Added {
		message = "Business added to favorites"
	}
	utils.SuccessResponse(c, http.StatusOK, message, gin.H{
		"favorites": result.Set,
		"added":     result.Added,
	})
}

func (f *FavoriteController) GetFavorites(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	favorites, err := f.FavoriteService.GetFavorites(c, userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Favorites fetched successfully", favorites)
}
