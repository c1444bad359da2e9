package middleware

import (
	"net/http"
	"strings"

	"github.com/ava1313/Portfolio-sub000/config/environment"
	"github.com/ava1313/Portfolio-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the Bearer session token and stores the actor's id
// and display name on the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(environment.GetJWTSecret()), nil
		})
		if err != nil || !token.Valid {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}

		userName, _ := claims["name"].(string)
		c.Set("userId", userID)
		c.Set("userName", userName)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the actor when a valid token is present but
// lets anonymous requests through; public screens use it to flag favorites
// and attendance.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(environment.GetJWTSecret()), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, _ := claims["sub"].(string); userID != "" {
				c.Set("userId", userID)
				userName, _ := claims["name"].(string)
				c.Set("userName", userName)
			}
		}
		c.Next()
	}
}
