// Package password checks the operator password against the bcrypt hash
// configured in OPERATOR_PASSWORD_HASH.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrMalformedHash    = errors.New("operator password hash is not a bcrypt hash")
)

const DefaultCost = bcrypt.DefaultCost

// HashPassword produces a value suitable for OPERATOR_PASSWORD_HASH.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// ValidateHash rejects a configured hash that bcrypt cannot parse, so a typo
// stops startup instead of locking the operator out at login.
func ValidateHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return ErrMalformedHash
	}
	return nil
}

func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return ErrMalformedHash
	}
}
