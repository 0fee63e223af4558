package api

import (
	"net/http"
	"strconv"

	"loomorro/goal-api/internal/canvas"
	"loomorro/goal-api/internal/layout"

	"github.com/gin-gonic/gin"
)

// GoalSVG renders the forest of one file as an SVG snapshot. theme
// picks the color scheme, selected highlights one goal.
func (a *API) GoalSVG(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	goals, ok := a.fileGoals(c, requestID, userID)
	if !ok {
		return
	}

	var selected uint
	if s := c.Query("selected"); s != "" {
		id, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "selected is not a valid integer",
				"requestID": requestID,
			})
			return
		}

		selected = uint(id)
	}

	svg := canvas.RenderSVG(layout.BuildTree(goals), canvas.RenderOptions{
		Theme:    canvas.ThemeByName(c.Query("theme")),
		Selected: selected,
	})

	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
