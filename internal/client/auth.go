package client

import (
	"context"
	"errors"

	"github.com/kwanchai/cleanbook/internal/model"
)

// ErrBadLoginResponse indicates the login succeeded at the HTTP level but
// the response did not carry a usable identity
var ErrBadLoginResponse = errors.New("login response missing access token")

// AuthAPI talks to the authentication endpoints
type AuthAPI struct {
	c *Client
}

// NewAuthAPI creates an AuthAPI
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. An empty role defaults to User.
func (a *AuthAPI) Register(ctx context.Context, username, password string, role model.Role) error {
	if role == "" {
		role = model.RoleUser
	}
	return a.c.post(ctx, "/auth/register", registerRequest{
		Username: username,
		Password: password,
		Role:     string(role),
	}, nil)
}

// Login authenticates and returns the signed-in identity. Any response
// without an access token is a failure.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (*model.Identity, error) {
	var dto userDTO
	if err := a.c.post(ctx, "/auth/login", loginRequest{
		Username: username,
		Password: password,
	}, &dto); err != nil {
		return nil, err
	}

	id := identityFromDTO(dto)
	if !id.Authenticated() {
		return nil, ErrBadLoginResponse
	}
	return id, nil
}
