package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// Signup registers a new account and returns a token for it.
// Returns ErrAlreadyExists if the email (exact, case-sensitive) is taken.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	var created *domain.User

	// The existence check gives a clean conflict; the unique constraint
	// still catches a concurrent signup with the same email.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.users.ExistsByEmail(txCtx, input.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return domain.ErrAlreadyExists
		}

		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: email already registered: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	result, err := s.issueToken(created)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", created.ID.String()))

	return result, nil
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: user.View()}, nil
}
