//go:build unit

package api_test

import (
	"time"

	"gpark/internal/handler/middleware"
	"gpark/internal/pkg/config"
	"gpark/internal/pkg/jwt"
	"gpark/internal/usecase"
	"gpark/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var (
	testJWTConfig = config.JWTConfig{Secret: "test-secret", Duration: "1h"}
	operatorActor = shared.OperatorActor("operator")
)

// newSessionRouter returns an engine whose routes all resolve the operator
// session the way the admin group does.
func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	validator := usecase.NewTokenValidator(jwt.NewService(testJWTConfig.Secret, time.Hour))
	router.Use(middleware.NewAuthMiddleware(validator).OperatorSession())
	return router
}
