package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/authz"
)

// Register relays a sign-up to the backend's auth layer.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if req.Role == authz.RoleAdmin {
		return fmt.Errorf("%w: admin accounts are not self-service", ErrValidation)
	}
	return c.do(ctx, http.MethodPost, "/api/auth/sign-up/email", "", nil, req, nil)
}

// GetSession resolves the session token to the current user, or nil when the
// backend does not recognize the token. Transport failures still error; an
// unrecognized session must not look like an outage.
func (c *Client) GetSession(ctx context.Context, session string) (*Session, error) {
	if session == "" {
		return nil, nil
	}
	var s Session
	err := c.do(ctx, http.MethodGet, "/api/auth/get-session", session, nil, nil, &s)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			return nil, nil
		}
		return nil, err
	}
	if s.User.ID == "" {
		return nil, nil
	}
	return &s, nil
}

// Users lists all accounts (admin).
func (c *Client) Users(ctx context.Context, session string) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/admin/users", session, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserStatus activates or suspends an account (admin).
func (c *Client) UpdateUserStatus(ctx context.Context, session, userID, status string) error {
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("%w: status is required", ErrValidation)
	}
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/admin/users/"+userID, session, nil, body, nil)
}
