package middleware

import (
	"net/http"

	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware translates errors collected on the context into the
// JSON envelope
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
