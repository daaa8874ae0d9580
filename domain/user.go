package domain

// User is the minimal identity resolved from a valid access token.
// It is recomputed on every request and never stored.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
