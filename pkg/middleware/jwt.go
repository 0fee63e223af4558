package middleware

import (
	"errors"
	"net/http"
	"strings"

	"loomorro/goal-api/internal/model"
	"loomorro/goal-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewJWTMiddleware gates protected routes. A missing token is a 401,
// anything invalid or expired is a 403. On success the decoded
// identity is stored as userID and userEmail for downstream handlers.
func NewJWTMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Access denied, a token is required",
				"requestID": requestID,
			})
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid authorization scheme",
				"requestID": requestID,
			})
			return
		}

		ident, err := security.ParseToken(strings.TrimSpace(tokenStr))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Authorization token invalid or expired",
				"requestID": requestID,
			})
			return
		}

		// Tokens can outlive the account they were issued for
		var user model.User
		err = d.Where("id = ?", ident.UserID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":     "Authorization token invalid or expired",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", ident.UserID)
		c.Set("userEmail", ident.Email)
		c.Next()
	}
}
