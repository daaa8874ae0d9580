package domain

// DefaultRefreshTokenLifetime is the fallback refresh-token lifetime in
// seconds (~30 days) used when the identity service does not report one.
const DefaultRefreshTokenLifetime = 30 * 24 * 60 * 60

// Session is the token pair issued by the identity service. The server never
// persists it; the browser holds the only copy, in two http-only cookies.
type Session struct {
	AccessToken           string `json:"access_token"`
	TokenType             string `json:"token_type,omitempty"`
	ExpiresIn             int    `json:"expires_in"`
	ExpiresAt             int64  `json:"expires_at"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int    `json:"refresh_token_expires_in,omitempty"`
}
