package auth

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmptyPassword      = errors.New("password cannot be empty")
)

type Role string

const (
	RoleOperator Role = "operator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOperator:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Credentials carries the single shared operator password; there are no user accounts.
type Credentials struct {
	password string
}

func NewCredentials(password string) (Credentials, error) {
	if strings.TrimSpace(password) == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{password: password}, nil
}

func (c Credentials) Password() string {
	return c.password
}
