package activity

import "github.com/heartmarshall/brightminds-backend/internal/domain"

// GenerateInput is the structured request for a new activity.
// ChildID is stored as given and never checked against child profiles.
type GenerateInput struct {
	Age           int
	Subjects      []string
	Intelligences []string
	Tools         []string
	ChildID       *string
}

// Validate validates the generation input.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.Age <= 0 {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be greater than 0"})
	}
	if len(i.Subjects) == 0 {
		errs = append(errs, domain.FieldError{Field: "subjects", Message: "at least one required"})
	}
	if len(i.Intelligences) == 0 {
		errs = append(errs, domain.FieldError{Field: "intelligences", Message: "at least one required"})
	}
	if len(i.Tools) == 0 {
		errs = append(errs, domain.FieldError{Field: "tools", Message: "at least one required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
