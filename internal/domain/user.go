package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder (usually a parent) who owns child profiles.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserView is the public projection of a User. It never carries the password hash.
type UserView struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// View returns the public projection of u.
func (u *User) View() UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}
