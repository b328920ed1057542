//go:build unit

package auth_test

import (
	"testing"

	"gpark/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	role, err := auth.NewRole("operator")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleOperator, role)

	for _, s := range []string{"", "admin", "Operator"} {
		_, err := auth.NewRole(s)
		assert.ErrorIs(t, err, auth.ErrInvalidRole, s)
	}
}

func TestNewCredentials(t *testing.T) {
	c, err := auth.NewCredentials("s3cret")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", c.Password())

	_, err = auth.NewCredentials("   ")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}
