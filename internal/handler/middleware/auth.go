package middleware

import (
	"log/slog"
	"strings"

	"gpark/internal/domain/auth"
	"gpark/internal/pkg/cookie"
	"gpark/internal/usecase"
	"gpark/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey = "actor"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// OperatorSession resolves the operator flag for the request. It never aborts:
// operations that need an operator reject anonymous actors themselves.
func (m *AuthMiddleware) OperatorSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := shared.AnonymousActor()

		if token := extractToken(c); token != "" {
			subject, role, err := m.tokenValidator.ValidateToken(token)
			switch {
			case err != nil:
				slog.Debug("ignoring invalid session token", "error", err.Error())
			case role == auth.RoleOperator:
				actor = shared.OperatorActor(subject)
			}
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetActor returns the anonymous actor when OperatorSession did not run.
func GetActor(c *gin.Context) shared.Actor {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.AnonymousActor()
	}

	actor, ok := v.(shared.Actor)
	if !ok {
		return shared.AnonymousActor()
	}
	return actor
}
