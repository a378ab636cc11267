package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/brightminds-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Parent " + suffix,
		Email:        "parent-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedChild inserts a child profile owned by userID.
func SeedChild(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.ChildProfile {
	t.Helper()

	child := domain.ChildProfile{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Child " + uniqueSuffix(),
		Age:       8,
		Interests: []string{"space", "lego"},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO child_profiles (id, user_id, name, age, interests, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		child.ID, child.UserID, child.Name, child.Age, child.Interests, child.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChild: %v", err)
	}

	return child
}
