package client

import (
	"context"
	"net/http"

	"loomorro/goal-api/internal/model"
)

// Identity is the decoded token identity as returned by /api/profile.
type Identity struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

func (c *Client) Register(ctx context.Context, email, password, username string) (model.PublicUser, error) {
	var out model.PublicUser
	err := c.do(ctx, http.MethodPost, "/api/register", map[string]string{
		"email":    email,
		"password": password,
		"username": username,
	}, &out)

	return out, err
}

// Login authenticates and persists the token plus the public user in
// the session store.
func (c *Client) Login(ctx context.Context, email, password string) (model.PublicUser, error) {
	var out struct {
		Token string           `json:"token"`
		User  model.PublicUser `json:"user"`
	}

	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return model.PublicUser{}, err
	}

	if err := c.sess.SetToken(out.Token); err != nil {
		return model.PublicUser{}, err
	}

	if err := c.sess.SetUser(out.User); err != nil {
		return model.PublicUser{}, err
	}

	return out.User, nil
}

func (c *Client) Logout() {
	c.sess.Clear()
}

func (c *Client) Profile(ctx context.Context) (Identity, error) {
	var out struct {
		User Identity `json:"user"`
	}

	err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out)
	return out.User, err
}
