package api

import (
	"errors"
	"net/http"

	"loomorro/goal-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GoalDelete removes a goal together with its whole subtree.
// Orphaned branches would be unreachable from the canvas otherwise.
func (a *API) GoalDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	goalID := c.Param("id")

	var goal model.Goal
	err := a.DB.
		Where("user_id = ? AND id = ?", userID, goalID).
		First(&goal).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Goal not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if goal exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		ids := []uint{goal.ID}
		frontier := []uint{goal.ID}

		for len(frontier) > 0 {
			var children []uint
			err := tx.Model(model.Goal{}).
				Where("user_id = ? AND parent_id IN ?", userID, frontier).
				Pluck("id", &children).
				Error
			if err != nil {
				return err
			}

			ids = append(ids, children...)
			frontier = children
		}

		return tx.Where("user_id = ? AND id IN ?", userID, ids).Delete(model.Goal{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete goal", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, goal)
}
