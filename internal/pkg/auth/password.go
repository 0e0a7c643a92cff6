package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a password does not match the stored credential.
var ErrPasswordMismatch = errors.New("password mismatch")

// PasswordVerifier compares a submitted password with the stored credential.
type PasswordVerifier interface {
	Verify(stored string, password string) error
}

// BcryptVerifier accepts bcrypt hashes and falls back to plaintext for legacy rows.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates BcryptVerifier with provided cost used by Hash.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash returns bcrypt hash for provided password.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Verify checks password against the stored value.
func (v *BcryptVerifier) Verify(stored string, password string) error {
	if isBcryptHash(stored) {
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
			return ErrPasswordMismatch
		}
		return nil
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") || strings.HasPrefix(value, "$2b$") || strings.HasPrefix(value, "$2y$")
}
