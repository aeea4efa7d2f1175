// Package cryptox wraps password hashing for stored user records.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when hashing is enabled.
const DefaultCost = bcrypt.DefaultCost

// ErrPasswordMismatch is returned by ComparePassword when the password does
// not match the hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword returns a salted bcrypt hash of password.
//
// bcrypt ignores input beyond 72 bytes; longer passwords are rejected by the
// library with bcrypt.ErrPasswordTooLong.
func HashPassword(password []byte, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies password against a hash produced by HashPassword.
// The registry never logs users in; this is how a stored hash is checked.
func ComparePassword(hashed string, password []byte) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), password)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
