package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"loomorro/goal-api/internal/layout"
	"loomorro/goal-api/internal/model"
)

type CreateGoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ParentID    *uint  `json:"parent_id,omitempty"`
	FileID      uint   `json:"file_id"`
	Status      string `json:"status,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
}

// UpdateGoalInput only sends the fields that are set, the server
// keeps the rest untouched.
type UpdateGoalInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
}

type Tree struct {
	Nodes  []*layout.Node `json:"nodes"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
}

func (c *Client) CreateGoal(ctx context.Context, in CreateGoalInput) (model.Goal, error) {
	var out model.Goal
	err := c.do(ctx, http.MethodPost, "/api/goals", in, &out)
	return out, err
}

// ListGoals returns the caller's goals newest-first. fileID 0 lists
// goals across all files.
func (c *Client) ListGoals(ctx context.Context, fileID uint) ([]model.Goal, error) {
	path := "/api/goals"
	if fileID != 0 {
		path += "?file_id=" + fmt.Sprint(fileID)
	}

	var out []model.Goal
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) GetGoal(ctx context.Context, id uint) (model.Goal, error) {
	var out model.Goal
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/goals/%d", id), nil, &out)
	return out, err
}

func (c *Client) UpdateGoal(ctx context.Context, id uint, in UpdateGoalInput) (model.Goal, error) {
	var out model.Goal
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/goals/%d", id), in, &out)
	return out, err
}

func (c *Client) DeleteGoal(ctx context.Context, id uint) (model.Goal, error) {
	var out model.Goal
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/goals/%d", id), nil, &out)
	return out, err
}

func (c *Client) GoalTree(ctx context.Context, fileID uint) (Tree, error) {
	var out Tree
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/goals/tree?file_id=%d", fileID), nil, &out)
	return out, err
}

// GoalSVG fetches the rendered canvas of a file. theme and selected
// are optional.
func (c *Client) GoalSVG(ctx context.Context, fileID uint, theme string, selected uint) ([]byte, error) {
	q := url.Values{}
	q.Set("file_id", fmt.Sprint(fileID))
	if theme != "" {
		q.Set("theme", theme)
	}
	if selected != 0 {
		q.Set("selected", fmt.Sprint(selected))
	}

	return c.get(ctx, "/api/goals/svg?"+q.Encode())
}
