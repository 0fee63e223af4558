package api

import (
	"net/http"
	"strings"

	"loomorro/goal-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fileCreateBody struct {
	Name string `json:"name"`
}

func (a *API) FileCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data fileCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	name := strings.TrimSpace(data.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "File name can't be empty",
			"requestID": requestID,
		})
		return
	}

	file := model.File{
		UserID: userID,
		Name:   name,
	}

	if err := a.DB.Create(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, file)
}
