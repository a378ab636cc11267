package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
	"github.com/heartmarshall/brightminds-backend/pkg/ctxutil"
)

// ValidateToken returns the user id carried by a bearer token.
// Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	userID, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return userID, nil
}

// Me returns the public view of the authenticated caller.
func (s *Service) Me(ctx context.Context) (*domain.UserView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	view := user.View()
	return &view, nil
}
