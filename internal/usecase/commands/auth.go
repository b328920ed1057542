package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"gpark/internal/domain/auth"
	"gpark/internal/pkg/errs"
	"gpark/internal/pkg/jwt"
	"gpark/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const operatorSubject = "operator"

type TokenPair struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, password string) (*TokenPair, error)
}

type authCommandsImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

func NewAuthCommands(passwordHash string, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, pw string) (*TokenPair, error) {
	credentials, err := auth.NewCredentials(pw)
	if err != nil {
		return nil, mark(err, ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	if err := password.ComparePassword(a.passwordHash, credentials.Password()); err != nil {
		if errs.Is(err, password.ErrMalformedHash) {
			slog.Error("operator password hash is unusable, check OPERATOR_PASSWORD_HASH")
		} else {
			slog.Warn("operator login rejected")
		}
		return nil, mark(ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	token, err := a.jwtService.GenerateToken(operatorSubject, auth.RoleOperator)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
