package api

import (
	"net/http"

	"loomorro/goal-api/internal/model"
	"loomorro/goal-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type goalCreateBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
	FileID      uint   `json:"file_id"`
	Status      string `json:"status"`
	Priority    *int   `json:"priority"`
}

func (a *API) GoalCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data goalCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.TitleValidator(data.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.FileID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file ID provided",
			"requestID": requestID,
		})
		return
	}

	// The target file must belong to the caller
	var fileCount int64
	err := a.DB.
		Model(model.File{}).
		Where("user_id = ? AND id = ?", userID, data.FileID).
		Count(&fileCount).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if file exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if fileCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "File not found. It either doesn't exist or you don't own it",
			"requestID": requestID,
		})
		return
	}

	// Same for the parent goal when nesting
	if data.ParentID != nil {
		var parentCount int64
		err := a.DB.
			Model(model.Goal{}).
			Where("user_id = ? AND id = ?", userID, *data.ParentID).
			Count(&parentCount).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if parent goal exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if parentCount == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Parent goal not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return
		}
	}

	status := data.Status
	if status == "" {
		status = "active"
	}

	if err := validators.StatusValidator(status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	priority := model.PriorityLow
	if data.Priority != nil {
		priority = *data.Priority
	}

	if err := validators.PriorityValidator(priority); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	goal := model.Goal{
		UserID:      userID,
		ParentID:    data.ParentID,
		FileID:      data.FileID,
		Title:       data.Title,
		Description: data.Description,
		Status:      status,
		Priority:    priority,
		OrderIndex:  0,
	}

	if err := a.DB.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create goal", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, goal)
}
