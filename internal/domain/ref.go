package domain

import "github.com/google/uuid"

// NormalizeRef canonicalises a weak child reference. Values that parse as a
// UUID are rewritten to the lowercase hyphenated form so they match
// ChildProfile.ID.String(); anything else is kept verbatim.
func NormalizeRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	id, err := uuid.Parse(*ref)
	if err != nil {
		return ref
	}
	s := id.String()
	return &s
}
