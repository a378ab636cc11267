package child

import (
	"strings"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// ChildInput is the payload for both create and update.
type ChildInput struct {
	Name      string
	Age       int
	Grade     *string
	Interests []string
}

// Validate validates the profile input.
func (i ChildInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Age <= 0 {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ChildInput) interests() []string {
	if i.Interests == nil {
		return []string{}
	}
	return i.Interests
}
