package domain

import "time"

const (
	RoleCitizen = "citizen"
	RoleAdmin   = "admin"
)

// User models a registered account. PasswordHash is always the argon2id
// digest of (plaintext, Salt); Salt is generated once at signup and never
// changes thereafter (there is no password-reset flow).
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Username     string    `json:"username"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}
