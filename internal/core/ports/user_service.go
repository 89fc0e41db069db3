package ports

import (
	"context"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

// UserService implements the account lifecycle behind the auth boundary.
type UserService interface {
	// Signup creates a credential with a fresh salt and the default
	// non-privileged role. Fails with domain.ErrUserExists on duplicate email.
	Signup(ctx context.Context, email, password, username string) (*domain.User, error)

	// Login verifies the password against the stored salted hash and returns
	// a signed bearer token. Fails with domain.ErrUserNotFound or
	// domain.ErrWrongPassword.
	Login(ctx context.Context, email, password string) (string, error)

	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, username, email string) (*domain.User, error)
	DeleteAccount(ctx context.Context, userID string) error
}
