package auth

import "github.com/heartmarshall/brightminds-backend/internal/domain"

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	AccessToken string
	User        domain.UserView
}
