package api

import (
	"errors"
	"net/http"

	"loomorro/goal-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) FileDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	fileID := c.Param("id")

	var file model.File
	err := a.DB.
		Where("user_id = ? AND id = ?", userID, fileID).
		First(&file).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "File not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if file exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var count int64
	err = a.DB.
		Model(model.File{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to count user files", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// A user without files has nowhere to put goals
	if count <= 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Can't delete your only file",
			"requestID": requestID,
		})
		return
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND file_id = ?", userID, file.ID).Delete(model.Goal{}).Error; err != nil {
			return err
		}

		return tx.Delete(&file).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, file)
}
