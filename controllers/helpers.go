package controllers

import (
	"github.com/ava1313/Portfolio-sub000/models"

	"github.com/gin-gonic/gin"
)

// actorFromContext resolves the authenticated actor set by the auth
// middleware; nil when the request is anonymous
func actorFromContext(c *gin.Context) *models.Actor {
	userID, exists := c.Get("userId")
	if !exists {
		return nil
	}

	actor := &models.Actor{ID: userID.(string)}
	if userName, exists := c.Get("userName"); exists {
		actor.Name, _ = userName.(string)
	}
	return actor
}
