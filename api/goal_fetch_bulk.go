package api

import (
	"net/http"
	"strconv"

	"loomorro/goal-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GoalFetchBulk lists the caller's goals newest-first. With file_id
// set only the goals of that file are returned.
func (a *API) GoalFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	q := a.DB.Where("user_id = ?", userID)

	if fileID := c.Query("file_id"); fileID != "" {
		if _, err := strconv.Atoi(fileID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "file_id is not a valid integer",
				"requestID": requestID,
			})
			return
		}

		q = q.Where("file_id = ?", fileID)
	}

	var goals []model.Goal
	err := q.Order("created_at desc, id desc").Find(&goals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to lookup user goals", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, goals)
}
