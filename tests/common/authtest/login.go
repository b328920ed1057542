//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"gpark/internal/handler/dto/request"
	"gpark/internal/pkg/cookie"
	"gpark/internal/pkg/password"
	"gpark/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const OperatorPassword = "password123"

// OperatorPasswordHash hashes OperatorPassword for test configs.
func OperatorPasswordHash(t *testing.T) string {
	t.Helper()
	hash, err := password.HashPassword(OperatorPassword)
	require.NoError(t, err)
	return hash
}

// LoginOperator returns the session cookie issued by the login endpoint.
func LoginOperator(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Password: OperatorPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, session, "session cookie not found")
	require.NotEmpty(t, session.Value, "session cookie is empty")

	return session
}

func LogoutOperator(t *testing.T, router *gin.Engine, session *http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, []*http.Cookie{session}, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
