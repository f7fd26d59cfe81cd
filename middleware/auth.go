package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pethotel-backend/errors"
	"pethotel-backend/response"
	"pethotel-backend/services"
)

// AuthMiddleware decodes the operator token and optionally restricts the
// route to a set of roles.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		operatorID, operatorRole, err := services.GetOperatorFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == operatorRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("operatorID", operatorID)
		c.Set("operatorRole", operatorRole)
		c.Next()
	}
}

// ErrorHandler turns uncaught AppErrors into envelope responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr := errors.GetAppError(err); appErr != nil {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
