package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserProfile echoes the identity decoded from the caller's token.
// Doubles as an authenticated smoke test.
func (a *API) UserProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"user_id": c.MustGet("userID").(uint),
			"email":   c.MustGet("userEmail").(string),
		},
	})
}
