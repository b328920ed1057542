package api

import (
	"net/http"

	reqdto "gpark/internal/handler/dto/request"
	resdto "gpark/internal/handler/dto/response"
	"gpark/internal/handler/httperr"
	"gpark/internal/pkg/config"
	"gpark/internal/pkg/cookie"
	"gpark/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Operator login
// @Description Exchange the operator password for an HTTP-only session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	tokens, err := h.cmds.Login(c.Request.Context(), req.Password)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, tokens.AccessToken, tokens.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Message:   "Logged in",
		ExpiresIn: int64(tokens.ExpiresIn.Seconds()),
	})
}

// @Summary Operator logout
// @Description Clear the session cookie
// @Tags admin
// @Success 204 "No Content"
// @Router /api/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; dropping the cookie is all there is to do.
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
