package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a parent's rating of a completed activity.
// Rating is stored as given; the 1-5 range is a client convention only.
type Feedback struct {
	ID          uuid.UUID
	ActivityID  string
	ChildID     *string
	Rating      int
	Experience  string
	Outcomes    string
	Suggestions *string
	CreatedAt   time.Time
}

// Artifact is an uploaded file attached to an activity. FileData holds the
// payload as standard base64.
type Artifact struct {
	ID          uuid.UUID
	ActivityID  string
	ChildID     *string
	Filename    string
	ContentType string
	FileData    string
	CreatedAt   time.Time
}
