package domain

import (
	"errors"
	"time"
)

// Group is the role tier of a user account.
//
//   - GroupUser: regular account, may only manage itself and its own listings.
//   - GroupAdmin: may manage any non-root user and any listing.
//   - GroupRoot: provisioned once at startup from configuration; has admin
//     powers plus the ability to modify root accounts. Never creatable,
//     grantable, or deletable through the API.
const (
	GroupUser  = "user"
	GroupAdmin = "admin"
	GroupRoot  = "root"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("username already exists")
var ErrForbidden = errors.New("forbidden")
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// ValidGroup reports whether g is one of the known role tiers.
func ValidGroup(g string) bool {
	return g == GroupUser || g == GroupAdmin || g == GroupRoot
}

// User models an account in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Group        string    `json:"group"`
	CreatedAt    time.Time `json:"created_at"`
}
