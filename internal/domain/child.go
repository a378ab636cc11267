package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChildProfile is a learner profile owned by exactly one User.
type ChildProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Age       int
	Grade     *string
	Interests []string
	CreatedAt time.Time
}
