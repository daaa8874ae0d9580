package supabase

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Neon18H/APP-WEB-FILPP/domain"
)

// sessionResponse is the token grant response of the auth endpoint. The user
// record rides along on sign-in and refresh.
type sessionResponse struct {
	domain.Session
	User *domain.User `json:"user"`
}

// SignInWithPassword exchanges email+password for a session. A rejected
// credential comes back as an *APIError with a 4xx status.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, *domain.User, error) {
	ctx, span := c.startSpan(ctx, "supabase.auth.sign_in")
	defer span.End()

	payload := map[string]string{"email": email, "password": password}
	var resp sessionResponse
	if err := c.postJSON(ctx, c.baseURL+"/auth/v1/token?grant_type=password", payload, &resp, ""); err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	return &resp.Session, resp.User, nil
}

// UserFromToken introspects an access token and returns the identity it
// proves. Expired or malformed tokens come back as credential-class
// APIErrors.
func (c *Client) UserFromToken(ctx context.Context, accessToken string) (*domain.User, error) {
	ctx, span := c.startSpan(ctx, "supabase.auth.get_user")
	defer span.End()

	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil, accessToken)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := c.doJSON(req, &user); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &user, nil
}

// RefreshSession exchanges a refresh token for a fresh session. The upstream
// rotates the refresh token, so callers must overwrite both cookies with the
// returned pair.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*domain.Session, error) {
	ctx, span := c.startSpan(ctx, "supabase.auth.refresh",
		attribute.Bool("rotating", true))
	defer span.End()

	payload := map[string]string{"refresh_token": refreshToken}
	var resp sessionResponse
	if err := c.postJSON(ctx, c.baseURL+"/auth/v1/token?grant_type=refresh_token", payload, &resp, ""); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &resp.Session, nil
}
