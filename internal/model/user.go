package model

// User represents a credential store row.
type User struct {
	ID             int64
	Username       string
	Email          string
	FullName       string
	HashedPassword string
	Disabled       bool
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Disabled bool   `json:"disabled"`
}

// TokenResponse is the body returned by POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
