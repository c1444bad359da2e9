package controllers

import (
	"net/http"

	"github.com/ava1313/Portfolio-sub000/services"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *services.NotificationService
}

func NewNotificationController() *NotificationController {
	return &NotificationController{
		NotificationService: services.NewNotificationService(),
	}
}

func (n *NotificationController) GetNotifications(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	businessID := c.Query("businessId")
	if businessID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "businessId is required")
		return
	}

	notifications, err := n.NotificationService.GetNotifications(c, businessID, userID.(string))
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications fetched successfully", notifications)
}

func (n *NotificationController) MarkNotificationRead(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	businessID := c.Query("businessId")
	notificationID := c.Param("id")
	if businessID == "" || notificationID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := n.NotificationService.MarkNotificationRead(c, businessID, notificationID, userID.(string)); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}
