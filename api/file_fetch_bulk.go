package api

import (
	"net/http"

	"loomorro/goal-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileFetchBulk lists the caller's files oldest-first so the file
// picker keeps a stable order.
func (a *API) FileFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var files []model.File
	err := a.DB.
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&files).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to lookup user files", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, files)
}
