// Package auth holds the admin credential check and the signed-token
// contract. There is a single shared admin secret, not a user directory;
// a matching password yields a 24-hour admin token.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// PasswordChecker compares login attempts against a bcrypt hash of the
// configured admin password. The hash is computed once at startup so the
// first login does not pay the hashing cost twice.
type PasswordChecker struct {
	hash []byte
}

func NewPasswordChecker(password string) (*PasswordChecker, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	return &PasswordChecker{hash: hash}, nil
}

// Check reports whether the attempt matches the admin password.
func (p *PasswordChecker) Check(attempt string) bool {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(attempt)) == nil
}
