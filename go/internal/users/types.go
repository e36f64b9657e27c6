package users

import "errors"

var (
	// ErrDuplicateUsername is returned when registering a taken username
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidUser wraps every signup validation failure
	ErrInvalidUser = errors.New("invalid user")
)

// RegisterRequest represents the data needed to create a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
