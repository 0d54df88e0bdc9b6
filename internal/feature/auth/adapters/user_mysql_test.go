package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"trade_backend/internal/feature/auth/domain/entity"
	"trade_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Username: "alice",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{Username: "alice", Email: "duplicate@example.com", Password: "password1"}
		err := repo.Create(context.Background(), user1)
		require.NoError(t, err, "failed to create first user")

		// Create second user with the same email
		user2 := &entity.User{Username: "bob", Email: "duplicate@example.com", Password: "password2"}
		err = repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		created := &entity.User{Username: "alice", Email: "find@example.com", Password: "hash"}
		require.NoError(t, repo.Create(context.Background(), created))

		got, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("unknown email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "missing@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		created := &entity.User{Username: "alice", Email: "byid@example.com", Password: "hash"}
		require.NoError(t, repo.Create(context.Background(), created))

		got, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "byid@example.com", got.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByID(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
