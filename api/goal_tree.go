package api

import (
	"net/http"
	"strconv"

	"loomorro/goal-api/internal/layout"
	"loomorro/goal-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GoalTree returns the positioned forest of one file, ready to draw.
func (a *API) GoalTree(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	goals, ok := a.fileGoals(c, requestID, userID)
	if !ok {
		return
	}

	nodes := layout.BuildTree(goals)
	w, h := layout.CanvasSize(nodes)

	c.JSON(http.StatusOK, gin.H{
		"nodes":  nodes,
		"width":  w,
		"height": h,
	})
}

// fileGoals loads the goals of the file named in the file_id query
// parameter. On failure it writes the error response and returns
// ok=false.
func (a *API) fileGoals(c *gin.Context, requestID string, userID uint) ([]model.Goal, bool) {
	fileID := c.Query("file_id")
	if fileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file ID provided",
			"requestID": requestID,
		})
		return nil, false
	}

	if _, err := strconv.Atoi(fileID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "file_id is not a valid integer",
			"requestID": requestID,
		})
		return nil, false
	}

	var goals []model.Goal
	err := a.DB.
		Where("user_id = ? AND file_id = ?", userID, fileID).
		Order("created_at desc, id desc").
		Find(&goals).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to lookup file goals", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return goals, true
}
