//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gpark/internal/domain/auth"
	"gpark/internal/pkg/config"
	"gpark/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) OperatorToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken("operator", auth.RoleOperator)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ExpiredOperatorToken(t *testing.T) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken("operator", auth.RoleOperator)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // exp has second precision
	return token
}
