package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedUser(t *testing.T, repo *UserRepository, id, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           id,
		Username:     "user-" + id,
		Email:        email,
		PasswordHash: "hash",
		Salt:         "salt",
		Role:         domain.RoleCitizen,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "u1", "alice@example.com")

	byEmail, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.ID)
	require.Equal(t, "hash", byEmail.PasswordHash)
	require.Equal(t, "salt", byEmail.Salt)

	byID, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "u1", "dup@example.com")

	err := repo.Create(context.Background(), &domain.User{
		ID:    "u2",
		Email: "dup@example.com",
	})
	require.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByID(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	u := seedUser(t, repo, "u1", "erin@example.com")

	u.Username = "renamed"
	require.NoError(t, repo.Update(context.Background(), u))

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "renamed", stored.Username)

	require.NoError(t, repo.Delete(context.Background(), "u1"))
	_, err = repo.FindByID(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Count(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "u1", "a@example.com")
	seedUser(t, repo, "u2", "b@example.com")

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
