package client

import (
	"context"
	"fmt"
	"net/http"

	"loomorro/goal-api/internal/model"
)

func (c *Client) CreateFile(ctx context.Context, name string) (model.File, error) {
	var out model.File
	err := c.do(ctx, http.MethodPost, "/api/files", map[string]string{"name": name}, &out)
	return out, err
}

func (c *Client) ListFiles(ctx context.Context) ([]model.File, error) {
	var out []model.File
	err := c.do(ctx, http.MethodGet, "/api/files", nil, &out)
	return out, err
}

func (c *Client) RenameFile(ctx context.Context, id uint, name string) (model.File, error) {
	var out model.File
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/files/%d", id), map[string]string{"name": name}, &out)
	return out, err
}

// DeleteFile removes a file and its goals. The server refuses to
// delete the caller's last file.
func (c *Client) DeleteFile(ctx context.Context, id uint) (model.File, error) {
	var out model.File
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/files/%d", id), nil, &out)
	return out, err
}
