package domain

import (
	"errors"
	"time"
)

const RoleAdmin = "admin"

// BootstrapUsername is the well-known administrator account guaranteed to
// exist after first initialization.
const BootstrapUsername = "admin"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an administrator account. The password is only ever held as a
// bcrypt hash and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
