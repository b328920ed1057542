package usecase

import (
	"gpark/internal/domain/auth"
	"gpark/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (string, auth.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, auth.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return "", "", err
	}

	return claims.Subject, role, nil
}
