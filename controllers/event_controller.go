package controllers

import (
	"net/http"

	"github.com/ava1313/Portfolio-sub000/models"
	"github.com/ava1313/Portfolio-sub000/services"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	EventService *services.EventService
}

func NewEventController() *EventController {
	return &EventController{
		EventService: services.NewEventService(),
	}
}

func (e *EventController) GetEvents(c *gin.Context) {
	userID := ""
	if actor := actorFromContext(c); actor != nil {
		userID = actor.ID
	}

	events, err := e.EventService.GetEvents(c, c.Query("businessId"), userID)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Events fetched successfully", events)
}

func (e *EventController) CreateEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var requestBody struct {
		BusinessID  string `json:"businessId" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Date        string `json:"date"`
		StartTime   string `json:"startTime"`
		EndTime     string `json:"endTime"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event := &models.Event{
		BusinessID:  requestBody.BusinessID,
		Title:       requestBody.Title,
		Description: requestBody.Description,
		Date:        requestBody.Date,
		StartTime:   requestBody.StartTime,
		EndTime:     requestBody.EndTime,
		ImageURL:    requestBody.ImageURL,
	}

	saved, err := e.EventService.CreateEvent(c, userID.(string), event)
	if err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Event created successfully", saved)
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.EventService.DeleteEvent(c, userID.(string), eventID); err != nil {
		c.Error(err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event deleted successfully", nil)
}

// ToggleAttendance flips the caller's membership in the event's attendees set
func (e *EventController) ToggleAttendance(c *gin.Context) {
	actor := actorFromContext(c)
	if actor == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := e.EventService.ToggleAttendance(c, actor, eventID)
	if err != nil {
		c.Error(err)
		return
	}

	message := "No longer attending"
	if result.Added {
		message = "Attending event"
	}
	utils.SuccessResponse(c, http.StatusOK, message, gin.H{
		"attendees": result.Set,
		"attending": result.Added,
	})
}
