package api

import (
	"errors"
	"net/http"

	"loomorro/goal-api/internal/model"
	"loomorro/goal-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pointer fields tell absent apart from zero, only provided fields
// are written.
type goalEditBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *int    `json:"priority"`
}

func (a *API) GoalEdit(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	goalID := c.Param("id")

	var data goalEditBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

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

		zap.L().Error("Failed to fetch goal from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Title != nil {
		if err := validators.TitleValidator(*data.Title); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		goal.Title = *data.Title
	}

	if data.Description != nil {
		goal.Description = *data.Description
	}

	if data.Status != nil {
		if err := validators.StatusValidator(*data.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		goal.Status = *data.Status
	}

	if data.Priority != nil {
		if err := validators.PriorityValidator(*data.Priority); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		goal.Priority = *data.Priority
	}

	if err := a.DB.Save(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update goal entry", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, goal)
}
